package rpc

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/daniilsolovey/newshub/internal/metrics"
	"github.com/daniilsolovey/newshub/internal/newsportal"
	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"
)

const (
	NamespaceArticles = "articles"

	// unknownMethod labels calls zenrpc could not route, so that arbitrary
	// method names do not create new series.
	unknownMethod = "unknown"
)

func New(logger *slog.Logger, manager *newsportal.Manager, m *metrics.Metrics, relatedLimit int) http.Handler {
	rpcService := NewArticleService(manager, relatedLimit)
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register(NamespaceArticles, rpcService)
	rpcServer.Use(
		middleware.WithSLog(logger.InfoContext, "newshub", nil),
		withMetrics(m),
	)

	return rpcServer
}

// withMetrics counts every call by namespace.method and error code (0 on success).
func withMetrics(m *metrics.Metrics) zenrpc.MiddlewareFunc {
	return func(h zenrpc.InvokeFunc) zenrpc.InvokeFunc {
		return func(ctx context.Context, method string, params json.RawMessage) zenrpc.Response {
			resp := h(ctx, method, params)
			if m == nil {
				return resp
			}

			code := 0
			if resp.Error != nil {
				code = resp.Error.Code
			}

			name := zenrpc.NamespaceFromContext(ctx) + "." + method
			if code == zenrpc.MethodNotFound {
				name = unknownMethod
			}
			m.RPCCall(name, code)

			return resp
		}
	}
}
