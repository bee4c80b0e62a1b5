package queries

import (
	"context"
	"errors"
	"fmt"

	"courierdocs/internal/core/docgen"
	"courierdocs/internal/core/domain/model/job"
	"courierdocs/internal/core/ports"
	"courierdocs/internal/pkg/errs"
)

// GenerateWaybillDocumentQueryHandler produces the printable waybill for a
// shipment: loads the aggregate, the settings, and the optional linked job,
// runs the waybill assembler, and renders the resulting pages.
type GenerateWaybillDocumentQueryHandler struct {
	shipments ports.ShipmentRepository
	jobs      ports.JobRepository
	settings  ports.SettingsRepository
	renderer  ports.DocumentRenderer
}

// NewGenerateWaybillDocumentQueryHandler creates a handler for waybill generation.
// The renderer doubles as the text measurer driving the assembler's wrapping.
func NewGenerateWaybillDocumentQueryHandler(
	shipments ports.ShipmentRepository,
	jobs ports.JobRepository,
	settings ports.SettingsRepository,
	renderer ports.DocumentRenderer,
) GenerateWaybillDocumentQueryHandler {
	return GenerateWaybillDocumentQueryHandler{
		shipments: shipments,
		jobs:      jobs,
		settings:  settings,
		renderer:  renderer,
	}
}

// Handle executes the query. A linked job number that no longer resolves to a
// job record is not an error: the waybill is rendered without the job-details
// box.
func (h GenerateWaybillDocumentQueryHandler) Handle(
	ctx context.Context,
	query GenerateWaybillDocumentQuery,
) (DocumentResponse, error) {
	if err := query.Validate(); err != nil {
		return DocumentResponse{}, err
	}

	aggregate, err := h.shipments.Get(ctx, query.ShipmentID())
	if err != nil {
		return DocumentResponse{}, err
	}

	settings, err := h.settings.GetAll(ctx)
	if err != nil {
		return DocumentResponse{}, err
	}

	jobRecord, err := h.resolveJob(ctx, aggregate.JobNumber())
	if err != nil {
		return DocumentResponse{}, err
	}

	assembler := docgen.NewWaybillAssembler(h.renderer)
	pages, err := assembler.Assemble(aggregate, jobRecord, settings)
	if err != nil {
		return DocumentResponse{}, err
	}

	content, err := h.renderer.Render(pages)
	if err != nil {
		return DocumentResponse{}, err
	}

	return DocumentResponse{
		FileName: fmt.Sprintf("waybill-%s.pdf", aggregate.TrackingNumber()),
		Content:  content,
	}, nil
}

func (h GenerateWaybillDocumentQueryHandler) resolveJob(
	ctx context.Context, jobNumber *string,
) (*job.Job, error) {
	if jobNumber == nil {
		return nil, nil
	}

	jobRecord, err := h.jobs.GetByNumber(ctx, *jobNumber)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return jobRecord, nil
}
