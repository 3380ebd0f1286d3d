package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	ListingServiceName  = "marketplace.v1.ListingService"
	CategoryServiceName = "marketplace.v1.CategoryService"
	ChatServiceName     = "marketplace.v1.ChatService"
	StatsServiceName    = "marketplace.v1.StatsService"
)

// unary adapts a typed method to grpc.MethodHandler the way generated code does.
func unary[S any](service, method string, call func(S, context.Context, *structpb.Struct) (*structpb.Struct, error)) grpc.MethodDesc {
	fullMethod := FullMethod(service, method)
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(S), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(S), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// FullMethod returns the invoke path of a method, e.g. "/marketplace.v1.ChatService/ListMessages".
func FullMethod(service, method string) string {
	return "/" + service + "/" + method
}

type ListingServiceServer interface {
	ListBusinesses(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListProducts(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetBusiness(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetProduct(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetFacets(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

var ListingServiceDesc = grpc.ServiceDesc{
	ServiceName: ListingServiceName,
	HandlerType: (*ListingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(ListingServiceName, "ListBusinesses", ListingServiceServer.ListBusinesses),
		unary(ListingServiceName, "ListProducts", ListingServiceServer.ListProducts),
		unary(ListingServiceName, "GetBusiness", ListingServiceServer.GetBusiness),
		unary(ListingServiceName, "GetProduct", ListingServiceServer.GetProduct),
		unary(ListingServiceName, "GetFacets", ListingServiceServer.GetFacets),
	},
	Metadata: "marketplace/v1/listing.proto",
}

func RegisterListingServiceServer(s grpc.ServiceRegistrar, srv ListingServiceServer) {
	s.RegisterService(&ListingServiceDesc, srv)
}

type CategoryServiceServer interface {
	ListCategories(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

var CategoryServiceDesc = grpc.ServiceDesc{
	ServiceName: CategoryServiceName,
	HandlerType: (*CategoryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(CategoryServiceName, "ListCategories", CategoryServiceServer.ListCategories),
	},
	Metadata: "marketplace/v1/category.proto",
}

func RegisterCategoryServiceServer(s grpc.ServiceRegistrar, srv CategoryServiceServer) {
	s.RegisterService(&CategoryServiceDesc, srv)
}

type ChatServiceServer interface {
	ListConversations(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListMessages(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

var ChatServiceDesc = grpc.ServiceDesc{
	ServiceName: ChatServiceName,
	HandlerType: (*ChatServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(ChatServiceName, "ListConversations", ChatServiceServer.ListConversations),
		unary(ChatServiceName, "ListMessages", ChatServiceServer.ListMessages),
	},
	Metadata: "marketplace/v1/chat.proto",
}

func RegisterChatServiceServer(s grpc.ServiceRegistrar, srv ChatServiceServer) {
	s.RegisterService(&ChatServiceDesc, srv)
}

type StatsServiceServer interface {
	ListStats(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RenderFrames(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

var StatsServiceDesc = grpc.ServiceDesc{
	ServiceName: StatsServiceName,
	HandlerType: (*StatsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(StatsServiceName, "ListStats", StatsServiceServer.ListStats),
		unary(StatsServiceName, "RenderFrames", StatsServiceServer.RenderFrames),
	},
	Metadata: "marketplace/v1/stats.proto",
}

func RegisterStatsServiceServer(s grpc.ServiceRegistrar, srv StatsServiceServer) {
	s.RegisterService(&StatsServiceDesc, srv)
}

// Invoke calls one unary method with a plain map request.
func Invoke(ctx context.Context, cc grpc.ClientConnInterface, service, method string, req map[string]any, opts ...grpc.CallOption) (*structpb.Struct, error) {
	in, err := structpb.NewStruct(req)
	if err != nil {
		return nil, err
	}
	out := new(structpb.Struct)
	if err := cc.Invoke(ctx, FullMethod(service, method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
