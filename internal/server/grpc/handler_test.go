package grpc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/dmitrijs2005/printquote/internal/aggregate"
	"github.com/dmitrijs2005/printquote/internal/common"
	"github.com/dmitrijs2005/printquote/internal/logging"
	pb "github.com/dmitrijs2005/printquote/internal/proto"
	"github.com/dmitrijs2005/printquote/internal/server/auth"
	"github.com/dmitrijs2005/printquote/internal/server/models"
	"github.com/dmitrijs2005/printquote/internal/server/services"
)

type fakeQuotes struct {
	last services.EstimateInput
	err  error
}

func (f *fakeQuotes) Estimate(_ context.Context, in services.EstimateInput) (*services.Quote, error) {
	f.last = in
	if f.err != nil {
		return nil, f.err
	}
	return &services.Quote{
		Job: &models.Job{
			ID: "j1", Client: in.Client, ArchiveName: in.ArchiveName,
			Folders: []aggregate.FolderSummary{{Folder: "JobA", MonoSheets: 5, Files: 1}},
		},
		ReportURL: "https://s3.local/reports/j1.xlsx",
	}, nil
}

func (f *fakeQuotes) GetJob(_ context.Context, id string) (*services.Quote, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &services.Quote{Job: &models.Job{ID: id}}, nil
}

func (f *fakeQuotes) UploadURL(context.Context) (*services.Upload, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &services.Upload{ObjectKey: "uploads/u1.zip", URL: "https://s3.local/uploads/u1.zip?put"}, nil
}

func dialServer(t *testing.T, s *GRPCServer) pb.QuoteServiceClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, lis) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return pb.NewQuoteServiceClient(conn)
}

func TestQuoteService_OverBufconn(t *testing.T) {
	quotes := &fakeQuotes{}
	s := NewGRPCServer("", logging.NewNopLogger(), quotes, "secret", 1<<20)
	c := dialServer(t, s)

	token, err := auth.GenerateToken("front-desk", []byte("secret"), time.Hour)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pong, err := c.Ping(ctx, &pb.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", pong.GetStatus())

	_, err = c.Estimate(ctx, &pb.EstimateRequest{ArchiveName: "job.zip"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	authed := metadata.AppendToOutgoingContext(ctx, common.AccessTokenHeaderName, token)
	resp, err := c.Estimate(authed, &pb.EstimateRequest{ArchiveName: "job.zip", Archive: []byte("PK"), SiblingStorage: true})
	require.NoError(t, err)
	assert.Equal(t, "j1", resp.GetJob().GetId())
	assert.Equal(t, "front-desk", resp.GetJob().GetClient())
	assert.Equal(t, "https://s3.local/reports/j1.xlsx", resp.GetJob().GetReportUrl())
	assert.Equal(t, int32(5), resp.GetJob().GetFolders()[0].GetMonoSheets())

	assert.Equal(t, "front-desk", quotes.last.Client)
	assert.Equal(t, []byte("PK"), quotes.last.Archive)
	assert.True(t, quotes.last.SiblingStorage)

	job, err := c.GetJob(authed, &pb.GetJobRequest{JobId: "j7"})
	require.NoError(t, err)
	assert.Equal(t, "j7", job.GetJob().GetId())

	_, err = c.UploadURL(ctx, &pb.UploadURLRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	up, err := c.UploadURL(authed, &pb.UploadURLRequest{})
	require.NoError(t, err)
	assert.Equal(t, "uploads/u1.zip", up.GetObjectKey())
	assert.Equal(t, "https://s3.local/uploads/u1.zip?put", up.GetUrl())
	assert.Equal(t, "application/zip", up.GetContentType())
}

func TestStatusError(t *testing.T) {
	s := newTestServer("k")
	tests := []struct {
		err  error
		want codes.Code
	}{
		{common.ErrNoArchive, codes.InvalidArgument},
		{fmt.Errorf("open: %w", common.ErrArchiveOpen), codes.InvalidArgument},
		{common.ErrArchiveTooLarge, codes.ResourceExhausted},
		{common.ErrNoObjectStore, codes.FailedPrecondition},
		{fmt.Errorf("job x: %w", common.ErrorNotFound), codes.NotFound},
		{fmt.Errorf("estimate: %w", context.Canceled), codes.Canceled},
		{context.DeadlineExceeded, codes.DeadlineExceeded},
		{errors.New("db is down"), codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, status.Code(s.statusError(context.Background(), tt.err)))
		})
	}

	assert.Equal(t, "internal error", status.Convert(s.statusError(context.Background(), errors.New("secret detail"))).Message())
}
