package handler

import (
	"context"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/fekuna/omnipos-marketplace-service/internal/fixture"
	"github.com/fekuna/omnipos-marketplace-service/internal/format"
	"github.com/fekuna/omnipos-marketplace-service/internal/listing/repository"
	"github.com/fekuna/omnipos-marketplace-service/internal/listing/usecase"
	"github.com/fekuna/omnipos-marketplace-service/internal/logger"
	"github.com/fekuna/omnipos-marketplace-service/internal/query"
	"github.com/fekuna/omnipos-marketplace-service/internal/rpc"
	"github.com/fekuna/omnipos-marketplace-service/internal/rpc/rpctest"
	"github.com/fekuna/omnipos-marketplace-service/internal/rpcctx"
)

func dial(t *testing.T) *grpc.ClientConn {
	t.Helper()
	catalog, err := fixture.Load("", time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("fixture.Load: %v", err)
	}
	log := logger.NewNop()
	uc := usecase.NewListingUseCase(repository.NewMemoryRepository(catalog), usecase.Options{
		BusinessSort: query.SortRating,
		ProductSort:  query.SortRelevant,
	}, log)
	h := NewListingHandler(uc, format.NewFormatter("en-US"), "USD", log)

	return rpctest.Dial(t, func(s *grpc.Server) {
		rpc.RegisterListingServiceServer(s, h)
	}, grpc.UnaryInterceptor(rpcctx.ContextInterceptor(log)))
}

func call(t *testing.T, conn *grpc.ClientConn, method string, req map[string]any) (map[string]any, error) {
	t.Helper()
	out, err := rpc.Invoke(context.Background(), conn, rpc.ListingServiceName, method, req)
	if err != nil {
		return nil, err
	}
	return out.AsMap(), nil
}

func TestListProductsOverGRPC(t *testing.T) {
	conn := dial(t)

	resp, err := call(t, conn, "ListProducts", map[string]any{
		"search":        "ethiopian",
		"in_stock_only": true,
	})
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}

	items := resp["items"].([]any)
	if len(items) != 1 {
		t.Fatalf("items = %v", items)
	}
	p := items[0].(map[string]any)
	if p["price_label"] != "$24.99" || p["original_price_label"] != "$29.99" {
		t.Errorf("price labels = %v / %v", p["price_label"], p["original_price_label"])
	}
	if p["discount_percent"] != float64(17) {
		t.Errorf("discount = %v; want 17", p["discount_percent"])
	}
	if resp["total"] != float64(6) || resp["matched"] != float64(1) {
		t.Errorf("total=%v matched=%v", resp["total"], resp["matched"])
	}
}

func TestListBusinessesOverGRPC(t *testing.T) {
	conn := dial(t)

	resp, err := call(t, conn, "ListBusinesses", map[string]any{
		"category": "food",
		"sort":     "popular",
	})
	if err != nil {
		t.Fatalf("ListBusinesses: %v", err)
	}
	if resp["sort"] != "popular" || resp["fallback"] != false {
		t.Errorf("sort=%v fallback=%v", resp["sort"], resp["fallback"])
	}
	items := resp["items"].([]any)
	if len(items) != 2 {
		t.Fatalf("got %d food businesses; want 2", len(items))
	}
	first := items[0].(map[string]any)
	if first["id"] != "6" || first["followers_label"] != "2,450" {
		t.Errorf("first = %v", first)
	}
}

func TestListBusinessesFallbackSort(t *testing.T) {
	conn := dial(t)

	resp, err := call(t, conn, "ListBusinesses", map[string]any{"sort": "nearest"})
	if err != nil {
		t.Fatalf("ListBusinesses: %v", err)
	}
	if resp["fallback"] != true || resp["sort"] != "relevant" {
		t.Errorf("sort=%v fallback=%v", resp["sort"], resp["fallback"])
	}
}

func TestListingErrors(t *testing.T) {
	conn := dial(t)

	tests := []struct {
		name   string
		method string
		req    map[string]any
		want   codes.Code
	}{
		{"unknown field", "ListProducts", map[string]any{"serch": "x"}, codes.InvalidArgument},
		{"bad flag type", "ListBusinesses", map[string]any{"only_open": "maybe"}, codes.InvalidArgument},
		{"missing id", "GetBusiness", map[string]any{}, codes.InvalidArgument},
		{"unknown business", "GetBusiness", map[string]any{"id": "404"}, codes.NotFound},
		{"unknown product", "GetProduct", map[string]any{"id": "404"}, codes.NotFound},
		{"unknown kind", "GetFacets", map[string]any{"kind": "service"}, codes.InvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := call(t, conn, tt.method, tt.req)
			if got := status.Code(err); got != tt.want {
				t.Errorf("code = %v; want %v (err %v)", got, tt.want, err)
			}
		})
	}
}

func TestGetProductAndFacets(t *testing.T) {
	conn := dial(t)

	p, err := call(t, conn, "GetProduct", map[string]any{"id": "6"})
	if err != nil {
		t.Fatalf("GetProduct: %v", err)
	}
	if p["name"] != "Vintage Leather Messenger Bag" || p["price_label"] != "$89.99" {
		t.Errorf("product = %v", p)
	}

	f, err := call(t, conn, "GetFacets", map[string]any{"kind": "business"})
	if err != nil {
		t.Fatalf("GetFacets: %v", err)
	}
	if f["businesses"] != float64(6) || f["open"] != float64(5) {
		t.Errorf("facets = %v", f)
	}
}
