// Package grpc exposes the quote service over gRPC.
package grpc

import (
	"context"
	"math"
	"net"

	"google.golang.org/grpc"

	"github.com/dmitrijs2005/printquote/internal/logging"
	pb "github.com/dmitrijs2005/printquote/internal/proto"
	"github.com/dmitrijs2005/printquote/internal/server/services"
)

// QuoteService is what the handlers need from services.QuoteService.
type QuoteService interface {
	Estimate(ctx context.Context, in services.EstimateInput) (*services.Quote, error)
	GetJob(ctx context.Context, jobID string) (*services.Quote, error)
	UploadURL(ctx context.Context) (*services.Upload, error)
}

type GRPCServer struct {
	pb.UnimplementedQuoteServiceServer
	address     string
	quotes      QuoteService
	logger      logging.Logger
	jwtSecret   []byte
	maxMsgBytes int
}

// NewGRPCServer builds a server accepting inline archives of up to
// maxArchiveBytes plus room for the rest of the request.
func NewGRPCServer(a string, l logging.Logger, qs QuoteService, secretKey string, maxArchiveBytes int64) *GRPCServer {
	limit := maxArchiveBytes + 64<<10
	if limit > math.MaxInt32 {
		limit = math.MaxInt32
	}
	return &GRPCServer{
		address:     a,
		logger:      l.With("module", "grpc_server"),
		quotes:      qs,
		jwtSecret:   []byte(secretKey),
		maxMsgBytes: int(limit),
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor),
		grpc.MaxRecvMsgSize(s.maxMsgBytes),
	)
	pb.RegisterQuoteServiceServer(srv, s)
	return srv
}

// Run listens on the configured address until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis and stops gracefully when ctx is done.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}
	return nil
}
