package fixture

import (
	"embed"
	"io/fs"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/fekuna/omnipos-marketplace-service/internal/model"
)

var ErrInvalidRecord = errors.New("invalid fixture record")

//go:embed data/*.yaml
var embedded embed.FS

const (
	businessesFile = "businesses.yaml"
	productsFile   = "products.yaml"
	categoriesFile = "categories.yaml"
	chatsFile      = "chats.yaml"
	statsFile      = "stats.yaml"
)

// Catalog is the mock data set the pages render.
type Catalog struct {
	Businesses    []*model.Business
	Products      []*model.Product
	Categories    []model.Category
	Conversations []*model.Conversation
	Messages      []*model.ChatMessage
	Stats         []model.Stat
}

// Load reads the fixture files from dir, or the embedded copies when dir is
// empty. Relative chat ages are resolved against now.
func Load(dir string, now time.Time) (*Catalog, error) {
	var fsys fs.FS
	if dir == "" {
		sub, err := fs.Sub(embedded, "data")
		if err != nil {
			return nil, err
		}
		fsys = sub
	} else {
		fsys = os.DirFS(dir)
	}
	return LoadFS(fsys, now)
}

func LoadFS(fsys fs.FS, now time.Time) (*Catalog, error) {
	c := &Catalog{}
	var g errgroup.Group

	g.Go(func() error {
		var raw []map[string]any
		if err := readYAML(fsys, businessesFile, &raw); err != nil {
			return err
		}
		out, err := decodeBusinesses(raw)
		c.Businesses = out
		return err
	})
	g.Go(func() error {
		var raw []map[string]any
		if err := readYAML(fsys, productsFile, &raw); err != nil {
			return err
		}
		out, err := decodeProducts(raw)
		c.Products = out
		return err
	})
	g.Go(func() error {
		var raw map[string]map[string][]map[string]any
		if err := readYAML(fsys, categoriesFile, &raw); err != nil {
			return err
		}
		out, err := decodeCategories(raw)
		c.Categories = out
		return err
	})
	g.Go(func() error {
		var raw struct {
			Conversations []map[string]any `yaml:"conversations"`
			Messages      []map[string]any `yaml:"messages"`
		}
		if err := readYAML(fsys, chatsFile, &raw); err != nil {
			return err
		}
		convs, err := decodeConversations(raw.Conversations, now)
		if err != nil {
			return err
		}
		msgs, err := decodeMessages(raw.Messages, now)
		c.Conversations, c.Messages = convs, msgs
		return err
	})
	g.Go(func() error {
		var raw []map[string]any
		if err := readYAML(fsys, statsFile, &raw); err != nil {
			return err
		}
		out, err := decodeStats(raw)
		c.Stats = out
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return c, nil
}

func readYAML(fsys fs.FS, name string, out any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return errors.Wrapf(err, "fixture: read %s", name)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "fixture: parse %s", name)
	}
	return nil
}

func idOrNew(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}

func checked(file string, index int, item model.Listable) error {
	if err := item.Validate(); err != nil {
		return errors.Wrapf(ErrInvalidRecord, "%s[%d]: %v", file, index, err)
	}
	return nil
}

func decodeBusinesses(raw []map[string]any) ([]*model.Business, error) {
	out := make([]*model.Business, 0, len(raw))
	for i, fields := range raw {
		r := newRecord(businessesFile, i, fields)
		b := &model.Business{
			ID:          idOrNew(r.String("id")),
			Name:        r.String("name"),
			Description: r.String("description"),
			Category:    r.String("category"),
			Rating:      r.Float("rating"),
			ReviewCount: r.Int("review_count"),
			Location:    r.String("location"),
			IsOpen:      r.Bool("is_open"),
			Followers:   r.Int("followers"),
			IsVerified:  r.Bool("is_verified"),
			ListedAt:    r.Time("listed_at"),
		}
		if r.err != nil {
			return nil, r.err
		}
		if err := checked(businessesFile, i, b); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func decodeProducts(raw []map[string]any) ([]*model.Product, error) {
	out := make([]*model.Product, 0, len(raw))
	for i, fields := range raw {
		r := newRecord(productsFile, i, fields)
		p := &model.Product{
			ID:            idOrNew(r.String("id")),
			Name:          r.String("name"),
			Description:   r.String("description"),
			Price:         r.Float("price"),
			OriginalPrice: r.OptionalFloat("original_price"),
			Currency:      r.String("currency"),
			Category:      r.String("category"),
			BusinessID:    r.String("business_id"),
			BusinessName:  r.String("business_name"),
			Location:      r.String("location"),
			InStock:       r.Bool("in_stock"),
			Rating:        r.Float("rating"),
			ReviewCount:   r.Int("review_count"),
			IsNew:         r.Bool("is_new"),
			IsFeatured:    r.Bool("is_featured"),
			ListedAt:      r.Time("listed_at"),
		}
		if r.err != nil {
			return nil, r.err
		}
		if p.Currency == "" {
			p.Currency = "USD"
		}
		if err := checked(productsFile, i, p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func decodeCategories(raw map[string]map[string][]map[string]any) ([]model.Category, error) {
	var out []model.Category
	// fixed order keeps option lists stable across loads
	for _, kind := range []model.Kind{model.KindBusiness, model.KindProduct} {
		for _, section := range []struct {
			key   string
			facet model.Facet
		}{{"categories", model.FacetCategory}, {"locations", model.FacetLocation}} {
			facet := section.facet
			for i, fields := range raw[string(kind)][section.key] {
				r := newRecord(categoriesFile, i, fields)
				c := model.Category{
					ID:    r.String("id"),
					Name:  r.String("name"),
					Match: r.String("match"),
					Kind:  kind,
					Facet: facet,
				}
				if r.err != nil {
					return nil, r.err
				}
				if c.ID == "" {
					return nil, errors.Wrapf(ErrInvalidRecord, "%s: %s %s[%d] has no id", categoriesFile, kind, facet, i)
				}
				out = append(out, c)
			}
		}
	}
	return out, nil
}

func decodeConversations(raw []map[string]any, now time.Time) ([]*model.Conversation, error) {
	out := make([]*model.Conversation, 0, len(raw))
	for i, fields := range raw {
		r := newRecord(chatsFile+" conversations", i, fields)
		c := &model.Conversation{
			ID:            idOrNew(r.String("id")),
			Name:          r.String("name"),
			LastMessage:   r.String("last_message"),
			LastMessageAt: r.Instant("last_message_", now),
			UnreadCount:   r.Int("unread_count"),
			IsOnline:      r.Bool("is_online"),
			IsGroup:       r.Bool("is_group"),
			Type:          r.String("type"),
		}
		if r.err != nil {
			return nil, r.err
		}
		if c.UnreadCount < 0 {
			return nil, errors.Wrapf(ErrInvalidRecord, "%s conversations[%d]: negative unread count", chatsFile, i)
		}
		out = append(out, c)
	}
	return out, nil
}

func decodeMessages(raw []map[string]any, now time.Time) ([]*model.ChatMessage, error) {
	out := make([]*model.ChatMessage, 0, len(raw))
	for i, fields := range raw {
		r := newRecord(chatsFile+" messages", i, fields)
		m := &model.ChatMessage{
			ID:             idOrNew(r.String("id")),
			ConversationID: r.String("conversation_id"),
			SenderID:       r.String("sender_id"),
			Text:           r.String("text"),
			SentAt:         r.Instant("", now),
			Type:           r.String("type"),
			FileURL:        r.String("file_url"),
			FileName:       r.String("file_name"),
		}
		if r.err != nil {
			return nil, r.err
		}
		if m.Type == "" {
			m.Type = "text"
		}
		out = append(out, m)
	}
	return out, nil
}

func decodeStats(raw []map[string]any) ([]model.Stat, error) {
	out := make([]model.Stat, 0, len(raw))
	for i, fields := range raw {
		r := newRecord(statsFile, i, fields)
		s := model.Stat{Label: r.String("label"), Value: r.String("value")}
		if r.err != nil {
			return nil, r.err
		}
		out = append(out, s)
	}
	return out, nil
}
