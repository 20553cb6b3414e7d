package rpc

import (
	"context"
	"encoding/json"

	"github.com/vmkteam/zenrpc/v2"
	"github.com/vmkteam/zenrpc/v2/smd"
)

var RPC = struct {
	ArticleService struct{ List, Featured, BySlug string }
}{
	ArticleService: struct{ List, Featured, BySlug string }{
		List:     "list",
		Featured: "featured",
		BySlug:   "bySlug",
	},
}

func (ArticleService) SMD() smd.ServiceInfo {
	return smd.ServiceInfo{
		Methods: map[string]smd.Service{
			"List": {
				Description: `List retrieves one page of articles, optionally within a category.
Returns summaries (without content) sorted by publishedAt DESC.`,
				Parameters: []smd.JSONSchema{
					{
						Name:        "filter",
						Description: `page and category filter`,
						Type:        smd.Object,
					},
				},
				Returns: smd.JSONSchema{
					Description: `list of article summaries with pagination`,
					Optional:    true,
					Type:        smd.Object,
				},
				Errors: map[int]string{
					404: "page not found",
					502: "content API failure",
				},
			},
			"Featured": {
				Description: `Featured retrieves the newest featured articles.`,
				Parameters:  []smd.JSONSchema{},
				Returns: smd.JSONSchema{
					Description: `list of featured article summaries`,
					Optional:    true,
					Type:        smd.Object,
				},
				Errors: map[int]string{
					502: "content API failure",
				},
			},
			"BySlug": {
				Description: `BySlug retrieves a single article with markdown content, SEO block and categories.`,
				Parameters: []smd.JSONSchema{
					{
						Name:        "req",
						Description: `article slug`,
						Type:        smd.Object,
					},
				},
				Returns: smd.JSONSchema{
					Description: `article with full content`,
					Optional:    true,
					Type:        smd.Object,
				},
				Errors: map[int]string{
					400: "slug is required",
					404: "article not found",
					502: "content API failure",
				},
			},
		},
	}
}

// Invoke dispatches articles.* calls in the shape zenrpc generates.
func (s ArticleService) Invoke(ctx context.Context, method string, params json.RawMessage) zenrpc.Response {
	resp := zenrpc.Response{}
	var err error

	switch method {
	case RPC.ArticleService.List:
		var args = struct {
			Filter ArticleFilter `json:"filter"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"filter"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.List(ctx, args.Filter))

	case RPC.ArticleService.Featured:
		resp.Set(s.Featured(ctx))

	case RPC.ArticleService.BySlug:
		var args = struct {
			Req ArticleBySlugRequest `json:"req"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"req"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.BySlug(ctx, args.Req))

	default:
		resp = zenrpc.NewResponseError(nil, zenrpc.MethodNotFound, "", nil)
	}

	return resp
}
