package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/printquote/internal/common"
	pb "github.com/dmitrijs2005/printquote/internal/proto"
	"github.com/dmitrijs2005/printquote/internal/server/auth"
)

type ctxKey string

// ClientKey holds the authenticated client name in the request context.
const ClientKey ctxKey = "client"

var protectedMethods = map[string]bool{
	pb.QuoteService_Estimate_FullMethodName:  true,
	pb.QuoteService_GetJob_FullMethodName:    true,
	pb.QuoteService_UploadURL_FullMethodName: true,
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if !protectedMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.AccessTokenHeaderName); len(values) > 0 {
			accessToken = values[0]
		}
	}
	if accessToken == "" {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	client, err := auth.ClientFromToken(accessToken, s.jwtSecret)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}

	return handler(context.WithValue(ctx, ClientKey, client), req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	s.logger.Info(ctx, "request",
		"method", info.FullMethod,
		"code", status.Code(err).String(),
		"duration", time.Since(start).String(),
	)
	return resp, err
}

func clientFromContext(ctx context.Context) string {
	c, _ := ctx.Value(ClientKey).(string)
	return c
}
