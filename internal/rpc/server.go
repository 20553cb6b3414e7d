package rpc

import (
	"log/slog"

	"github.com/daniilsolovey/persian-blog/internal/blog"
	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"
)

func New(logger *slog.Logger, manager *blog.Manager) *zenrpc.Server {
	rpcService := NewArticleService(manager)
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register("articles", rpcService)
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "persian-blog", nil))

	return rpcServer
}
