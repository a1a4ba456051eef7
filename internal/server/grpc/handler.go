package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/printquote/internal/common"
	pb "github.com/dmitrijs2005/printquote/internal/proto"
	"github.com/dmitrijs2005/printquote/internal/quoteapi"
	"github.com/dmitrijs2005/printquote/internal/server/services"
)

func (s *GRPCServer) Estimate(ctx context.Context, req *pb.EstimateRequest) (*pb.EstimateResponse, error) {
	q, err := s.quotes.Estimate(ctx, services.EstimateInput{
		Client:         clientFromContext(ctx),
		ArchiveName:    req.GetArchiveName(),
		Archive:        req.GetArchive(),
		ObjectKey:      req.GetObjectKey(),
		SiblingStorage: req.GetSiblingStorage(),
	})
	if err != nil {
		return nil, s.statusError(ctx, err)
	}
	return &pb.EstimateResponse{Job: quoteapi.EncodeJob(toAPI(q))}, nil
}

func (s *GRPCServer) GetJob(ctx context.Context, req *pb.GetJobRequest) (*pb.GetJobResponse, error) {
	q, err := s.quotes.GetJob(ctx, req.GetJobId())
	if err != nil {
		return nil, s.statusError(ctx, err)
	}
	return &pb.GetJobResponse{Job: quoteapi.EncodeJob(toAPI(q))}, nil
}

func (s *GRPCServer) UploadURL(ctx context.Context, req *pb.UploadURLRequest) (*pb.UploadURLResponse, error) {
	u, err := s.quotes.UploadURL(ctx)
	if err != nil {
		return nil, s.statusError(ctx, err)
	}
	return &pb.UploadURLResponse{ObjectKey: u.ObjectKey, Url: u.URL, ContentType: services.ArchiveContentType}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func toAPI(q *services.Quote) *quoteapi.Job {
	j := q.Job
	return &quoteapi.Job{
		ID:          j.ID,
		Client:      j.Client,
		ArchiveName: j.ArchiveName,
		Fingerprint: j.Fingerprint,
		CreatedAt:   j.CreatedAt,
		Folders:     j.Folders,
		Audit:       j.Audit,
		ReportURL:   q.ReportURL,
	}
}

// statusError maps service errors to gRPC codes. Unexpected errors are
// logged and hidden behind codes.Internal.
func (s *GRPCServer) statusError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrNoArchive), errors.Is(err, common.ErrArchiveOpen):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrNoObjectStore):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, common.ErrArchiveTooLarge):
		return status.Error(codes.ResourceExhausted, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	s.logger.Error(ctx, "request failed", "error", err)
	return status.Error(codes.Internal, "internal error")
}
