package httpadapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/chi/v5"

	api "maletas/internal/api"
	"maletas/internal/domain"
	"maletas/internal/ledger"
	"maletas/internal/session"
)

// Server implements the generated StrictServerInterface. It owns no state
// of its own; every operation delegates to the coordinator so the HTTP
// surface stays a thin translation layer.
type Server struct {
	coord *session.Coordinator
}

func New(coord *session.Coordinator) *Server {
	return &Server{coord: coord}
}

// Routes returns a chi.Router mounting the generated handlers.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	handler := api.NewStrictHandler(s, nil)
	api.HandlerFromMux(handler, r)
	return r
}

func toAPIRecord(rec domain.Record) api.Record {
	cats := make([]api.Category, 0, len(rec.Categories))
	for _, c := range rec.ActiveCategories() {
		cats = append(cats, api.Category(c))
	}
	out := api.Record{
		Code:         rec.Code,
		Categories:   cats,
		Observation:  rec.Observation,
		HasSignature: rec.HasSignature,
		CapturedAt:   rec.CapturedAt,
		Shift:        string(rec.Shift),
	}
	if rec.RawCode != "" && rec.RawCode != rec.Code {
		raw := rec.RawCode
		out.RawCode = &raw
	}
	return out
}

func strptr(s string) *string { return &s }

func (s *Server) GetHealthz(ctx context.Context, _ api.GetHealthzRequestObject) (api.GetHealthzResponseObject, error) {
	ok := "ok"
	return api.GetHealthz200JSONResponse{Status: &ok}, nil
}

func (s *Server) PostScans(ctx context.Context, req api.PostScansRequestObject) (api.PostScansResponseObject, error) {
	rec, err := s.coord.AddScan(ctx, req.Body.Raw)
	switch {
	case errors.Is(err, ledger.ErrDuplicate):
		return api.PostScans409JSONResponse{
			Message: "bag already registered",
			Signal:  strptr("duplicate"),
		}, nil
	case errors.Is(err, domain.ErrCodeTooShort):
		return api.PostScans422JSONResponse{Message: err.Error()}, nil
	case err != nil:
		return nil, err
	}
	return api.PostScans201JSONResponse{
		Record:  toAPIRecord(rec),
		Message: "bag " + rec.Code + " registered",
	}, nil
}

func (s *Server) PostRecords(ctx context.Context, req api.PostRecordsRequestObject) (api.PostRecordsResponseObject, error) {
	rec, err := s.coord.AddManual(ctx, req.Body.Code)
	switch {
	case errors.Is(err, ledger.ErrDuplicate):
		return api.PostRecords409JSONResponse{
			Message: "bag already registered",
			Signal:  strptr("duplicate"),
		}, nil
	case errors.Is(err, domain.ErrCodeNotExact):
		return api.PostRecords422JSONResponse{Message: err.Error()}, nil
	case err != nil:
		return nil, err
	}
	return api.PostRecords201JSONResponse{
		Record:  toAPIRecord(rec),
		Message: "bag " + rec.Code + " registered",
	}, nil
}

func (s *Server) GetRecords(ctx context.Context, _ api.GetRecordsRequestObject) (api.GetRecordsResponseObject, error) {
	records := s.coord.Ledger().All()
	out := make([]api.Record, len(records))
	for i, rec := range records {
		out[i] = toAPIRecord(rec)
	}
	return api.GetRecords200JSONResponse{Count: len(out), Records: out}, nil
}

func (s *Server) PatchRecordsCode(ctx context.Context, req api.PatchRecordsCodeRequestObject) (api.PatchRecordsCodeResponseObject, error) {
	upd := ledger.Update{
		Observation:  req.Body.Observation,
		HasSignature: req.Body.HasSignature,
	}
	if req.Body.Categories != nil {
		// A category list in the request is the full desired set.
		cats := make(map[domain.Category]bool, len(domain.AllCategories))
		for _, c := range domain.AllCategories {
			cats[c] = false
		}
		for _, c := range *req.Body.Categories {
			cats[domain.Category(c)] = true
		}
		upd.Categories = cats
	}

	rec, err := s.coord.Update(ctx, req.Code, upd)
	if errors.Is(err, ledger.ErrNotFound) {
		return api.PatchRecordsCode404JSONResponse{Message: "record not found"}, nil
	}
	if err != nil {
		return nil, err
	}
	return api.PatchRecordsCode200JSONResponse{
		Record:  toAPIRecord(rec),
		Message: "record updated",
	}, nil
}

func (s *Server) PostRecordsCodeCategoriesCategory(ctx context.Context, req api.PostRecordsCodeCategoriesCategoryRequestObject) (api.PostRecordsCodeCategoriesCategoryResponseObject, error) {
	rec, err := s.coord.ToggleCategory(ctx, req.Code, domain.Category(req.Category))
	if errors.Is(err, ledger.ErrNotFound) {
		return api.PostRecordsCodeCategoriesCategory404JSONResponse{Message: "record not found"}, nil
	}
	if err != nil {
		return nil, err
	}
	return api.PostRecordsCodeCategoriesCategory200JSONResponse{
		Record:  toAPIRecord(rec),
		Message: "category toggled",
	}, nil
}

func (s *Server) DeleteRecordsCode(ctx context.Context, req api.DeleteRecordsCodeRequestObject) (api.DeleteRecordsCodeResponseObject, error) {
	removed := s.coord.Remove(ctx, req.Code)
	msg := "no record under that code"
	if removed {
		msg = "record deleted"
	}
	return api.DeleteRecordsCode200JSONResponse{Removed: removed, Message: msg}, nil
}

func (s *Server) PostSessionFinalize(ctx context.Context, req api.PostSessionFinalizeRequestObject) (api.PostSessionFinalizeResponseObject, error) {
	meta := domain.SessionMetadata{User: req.Body.User}
	if req.Body.Shift != nil {
		meta.Shift = *req.Body.Shift
	}
	if req.Body.Airline != nil {
		meta.Airline = *req.Body.Airline
	}

	res, err := s.coord.Finalize(ctx, meta)
	switch {
	case errors.Is(err, session.ErrSubmissionInFlight):
		return api.PostSessionFinalize409JSONResponse{Message: err.Error()}, nil
	case errors.Is(err, session.ErrNothingToSubmit),
		errors.Is(err, session.ErrOperatorRequired),
		errors.Is(err, session.ErrGateClosed):
		return api.PostSessionFinalize422JSONResponse{Message: err.Error()}, nil
	case err != nil:
		// Transport exhaustion or misconfiguration; the wrapped message
		// reaches the operator verbatim.
		return api.PostSessionFinalize502JSONResponse{Message: err.Error()}, nil
	}

	out := api.PostSessionFinalize200JSONResponse{
		Count:   res.Count,
		Attempt: res.Attempt,
		BatchId: res.BatchID,
		Shift:   string(res.Shift),
		Message: formatSavedMessage(res.Count),
	}
	if res.Advisory != "" {
		out.Advisory = strptr(res.Advisory)
	}
	return out, nil
}

func formatSavedMessage(n int) string {
	if n == 1 {
		return "1 record submitted"
	}
	return fmt.Sprintf("%d records submitted", n)
}

func (s *Server) DeleteSession(ctx context.Context, _ api.DeleteSessionRequestObject) (api.DeleteSessionResponseObject, error) {
	s.coord.ClearAll(ctx)
	return api.DeleteSession200JSONResponse{Message: "session cleared"}, nil
}

func (s *Server) GetSessionMetadata(ctx context.Context, _ api.GetSessionMetadataRequestObject) (api.GetSessionMetadataResponseObject, error) {
	meta, _ := s.coord.Store().LoadMetadata(ctx)
	return api.GetSessionMetadata200JSONResponse{
		User:    meta.User,
		Shift:   meta.Shift,
		Airline: meta.Airline,
	}, nil
}

func (s *Server) GetSessionConnectivity(ctx context.Context, _ api.GetSessionConnectivityRequestObject) (api.GetSessionConnectivityResponseObject, error) {
	if err := s.coord.Ping(ctx); err != nil {
		return api.GetSessionConnectivity200JSONResponse{Ok: false, Message: err.Error()}, nil
	}
	return api.GetSessionConnectivity200JSONResponse{Ok: true, Message: "endpoint reachable"}, nil
}
