package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/printquote/internal/common"
	"github.com/dmitrijs2005/printquote/internal/logging"
	pb "github.com/dmitrijs2005/printquote/internal/proto"
	"github.com/dmitrijs2005/printquote/internal/server/auth"
)

func newTestServer(secret string) *GRPCServer {
	return NewGRPCServer("", logging.NewNopLogger(), &fakeQuotes{}, secret, 1<<20)
}

func withToken(token string) context.Context {
	md := metadata.New(map[string]string{common.AccessTokenHeaderName: token})
	return metadata.NewIncomingContext(context.Background(), md)
}

func TestInterceptor_PingNeedsNoToken(t *testing.T) {
	s := newTestServer("secret")

	called := false
	h := func(ctx context.Context, req any) (any, error) {
		called = true
		return "ok", nil
	}

	resp, err := s.accessTokenInterceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: pb.QuoteService_Ping_FullMethodName}, h)
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "ok", resp)
}

func TestInterceptor_Rejects(t *testing.T) {
	s := newTestServer("secret")

	expired, err := auth.GenerateToken("desk", []byte("secret"), -time.Second)
	require.NoError(t, err)

	tests := []struct {
		name string
		ctx  context.Context
		msg  string
	}{
		{"missing token", context.Background(), "missing token"},
		{"garbage token", withToken("not-a-valid-jwt"), ""},
		{"expired token", withToken(expired), common.ErrTokenExpired.Error()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := func(ctx context.Context, req any) (any, error) {
				t.Fatal("handler must not run")
				return nil, nil
			}
			for _, method := range []string{pb.QuoteService_Estimate_FullMethodName, pb.QuoteService_GetJob_FullMethodName, pb.QuoteService_UploadURL_FullMethodName} {
				_, err := s.accessTokenInterceptor(tt.ctx, nil, &grpc.UnaryServerInfo{FullMethod: method}, h)
				require.Error(t, err)
				assert.Equal(t, codes.Unauthenticated, status.Code(err))
				if tt.msg != "" {
					assert.Equal(t, tt.msg, status.Convert(err).Message())
				}
			}
		})
	}
}

func TestInterceptor_ValidTokenSetsClient(t *testing.T) {
	secret := "super-secret"
	s := newTestServer(secret)

	token, err := auth.GenerateToken("front-desk", []byte(secret), time.Hour)
	require.NoError(t, err)

	var got string
	h := func(ctx context.Context, req any) (any, error) {
		got = clientFromContext(ctx)
		return "ok", nil
	}

	_, err = s.accessTokenInterceptor(withToken(token), nil, &grpc.UnaryServerInfo{FullMethod: pb.QuoteService_Estimate_FullMethodName}, h)
	require.NoError(t, err)
	assert.Equal(t, "front-desk", got)
}
