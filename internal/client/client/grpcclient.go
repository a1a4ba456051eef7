package client

import (
	"context"
	"fmt"
	"math"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/printquote/internal/common"
	"github.com/dmitrijs2005/printquote/internal/netx"
	pb "github.com/dmitrijs2005/printquote/internal/proto"
	"github.com/dmitrijs2005/printquote/internal/quoteapi"
)

var putPresigned = netx.PutPresigned

// Large archives produce large audits.
const maxRecvMsgBytes = 64 << 20

// QuoteClient is the CLI's view of the quote server.
type QuoteClient interface {
	Close() error
	Ping(ctx context.Context) error
	Estimate(ctx context.Context, archiveName string, data []byte, siblingStorage bool) (*quoteapi.Job, error)
	Upload(ctx context.Context, data []byte) (string, error)
	EstimateObject(ctx context.Context, archiveName, objectKey string, siblingStorage bool) (*quoteapi.Job, error)
	GetJob(ctx context.Context, id string) (*quoteapi.Job, error)
}

type GRPCClient struct {
	endpointURL string
	accessToken string
	maxSend     int
	conn        *grpc.ClientConn
	client      pb.QuoteServiceClient
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if s.accessToken != "" {
		ctx = withAccessToken(ctx, s.accessToken)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewQuoteClient prepares a connection to endpointURL. maxArchiveBytes bounds
// the request size; 0 leaves the gRPC default in place.
func NewQuoteClient(endpointURL, accessToken string, maxArchiveBytes int64) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, accessToken: accessToken, maxSend: sendLimit(maxArchiveBytes)}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

// sendLimit leaves room for the request fields around the archive bytes.
func sendLimit(maxArchiveBytes int64) int {
	if maxArchiveBytes <= 0 {
		return 0
	}
	n := maxArchiveBytes + 64<<10
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(n)
}

func (s *GRPCClient) InitGRPCClient() error {
	callOpts := []grpc.CallOption{grpc.MaxCallRecvMsgSize(maxRecvMsgBytes)}
	if s.maxSend > 0 {
		callOpts = append(callOpts, grpc.MaxCallSendMsgSize(s.maxSend))
	}
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
		grpc.WithDefaultCallOptions(callOpts...),
	}

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewQuoteServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	if _, err := s.client.Ping(ctx, &pb.PingRequest{}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) Estimate(ctx context.Context, archiveName string, data []byte, siblingStorage bool) (*quoteapi.Job, error) {
	req := &pb.EstimateRequest{ArchiveName: archiveName, Archive: data, SiblingStorage: siblingStorage}

	resp, err := s.client.Estimate(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return decodeJob(resp.GetJob())
}

// Upload stores data in the server's object store through a presigned URL
// and returns the object key to estimate.
func (s *GRPCClient) Upload(ctx context.Context, data []byte) (string, error) {
	resp, err := s.client.UploadURL(ctx, &pb.UploadURLRequest{})
	if err != nil {
		return "", s.mapError(err)
	}
	if err := putPresigned(ctx, resp.GetUrl(), resp.GetContentType(), data); err != nil {
		return "", fmt.Errorf("upload archive: %w", err)
	}
	return resp.GetObjectKey(), nil
}

func (s *GRPCClient) EstimateObject(ctx context.Context, archiveName, objectKey string, siblingStorage bool) (*quoteapi.Job, error) {
	req := &pb.EstimateRequest{ArchiveName: archiveName, ObjectKey: objectKey, SiblingStorage: siblingStorage}

	resp, err := s.client.Estimate(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return decodeJob(resp.GetJob())
}

func (s *GRPCClient) GetJob(ctx context.Context, id string) (*quoteapi.Job, error) {
	resp, err := s.client.GetJob(ctx, &pb.GetJobRequest{JobId: id})
	if err != nil {
		return nil, s.mapError(err)
	}
	return decodeJob(resp.GetJob())
}

func decodeJob(in *pb.Job) (*quoteapi.Job, error) {
	j, err := quoteapi.DecodeJob(in)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	return j, nil
}

func (s *GRPCClient) mapError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable:
		return ErrUnavailable
	case codes.InvalidArgument, codes.ResourceExhausted:
		return fmt.Errorf("%w: %s", ErrRejected, st.Message())
	case codes.NotFound:
		return ErrJobNotFound
	case codes.DeadlineExceeded:
		return context.DeadlineExceeded
	case codes.Canceled:
		return context.Canceled
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
