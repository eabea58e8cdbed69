package service

import (
	"context"
	"errors"
	"time"

	"github.com/Italzenergy/AlzConnect-app/internal/authz"
	"github.com/Italzenergy/AlzConnect-app/internal/domerr"
	"github.com/Italzenergy/AlzConnect-app/internal/dto"
	"github.com/Italzenergy/AlzConnect-app/internal/model"
	"github.com/Italzenergy/AlzConnect-app/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentService manages the technical document catalog and the grant
// ledger toward customers. Catalog mutation and unassignment are admin-only;
// assignment and listing are open to all staff.
type DocumentService interface {
	Create(ctx context.Context, caller authz.Caller, req dto.CreateDocumentRequest) (*dto.DocumentResponse, error)
	List(ctx context.Context, caller authz.Caller, filter dto.DocumentFilter) ([]dto.DocumentResponse, error)
	Update(ctx context.Context, caller authz.Caller, id uuid.UUID, req dto.CreateDocumentRequest) (*dto.DocumentResponse, error)
	Delete(ctx context.Context, caller authz.Caller, id uuid.UUID) error

	Assign(ctx context.Context, caller authz.Caller, documentID uuid.UUID, req dto.AssignDocumentRequest) (*dto.AssignmentResponse, error)
	Unassign(ctx context.Context, caller authz.Caller, assignmentID uuid.UUID) error
	ListAssignments(ctx context.Context, caller authz.Caller, documentID uuid.UUID) ([]dto.AssignmentResponse, error)
}

type documentService struct {
	repo         repository.DocumentRepository
	customerRepo repository.CustomerRepository
}

func NewDocumentService(repo repository.DocumentRepository, customerRepo repository.CustomerRepository) DocumentService {
	return &documentService{repo: repo, customerRepo: customerRepo}
}

func (s *documentService) Create(ctx context.Context, caller authz.Caller, req dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	if err := authz.Require(caller, authz.EntityDocument, authz.ActionCreate); err != nil {
		return nil, err
	}
	doc := &model.Document{Name: req.Name, URL: req.URL, UploadedBy: caller.ID}
	if err := s.repo.Create(ctx, doc); err != nil {
		return nil, err
	}
	resp := documentToResponse(doc)
	return &resp, nil
}

func (s *documentService) List(ctx context.Context, caller authz.Caller, filter dto.DocumentFilter) ([]dto.DocumentResponse, error) {
	if err := authz.Require(caller, authz.EntityDocument, authz.ActionRead); err != nil {
		return nil, err
	}
	docs, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.DocumentResponse, len(docs))
	for i := range docs {
		resp[i] = documentToResponse(&docs[i])
	}
	return resp, nil
}

func (s *documentService) Update(ctx context.Context, caller authz.Caller, id uuid.UUID, req dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	if err := authz.Require(caller, authz.EntityDocument, authz.ActionUpdate); err != nil {
		return nil, err
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domerr.NotFound("documento no encontrado")
	}
	if req.Name != "" {
		doc.Name = req.Name
	}
	if req.URL != "" {
		doc.URL = req.URL
	}
	if err := s.repo.Update(ctx, doc); err != nil {
		return nil, err
	}
	resp := documentToResponse(doc)
	return &resp, nil
}

func (s *documentService) Delete(ctx context.Context, caller authz.Caller, id uuid.UUID) error {
	if err := authz.Require(caller, authz.EntityDocument, authz.ActionDelete); err != nil {
		return err
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return domerr.NotFound("documento no encontrado")
	}
	return s.repo.Delete(ctx, id)
}

// Assign grants a document to an active customer. A second grant for the
// same (document, customer) pair fails with a conflict; the composite unique
// index is the authority under concurrency.
func (s *documentService) Assign(ctx context.Context, caller authz.Caller, documentID uuid.UUID, req dto.AssignDocumentRequest) (*dto.AssignmentResponse, error) {
	if err := authz.Require(caller, authz.EntityAssignment, authz.ActionCreate); err != nil {
		return nil, err
	}
	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, domerr.Validation("customer_id invalido")
	}
	if _, err := s.repo.FindByID(ctx, documentID); err != nil {
		return nil, domerr.NotFound("documento no encontrado")
	}
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, domerr.NotFound("cliente no encontrado")
	}
	if customer.Status != model.CustomerActive {
		return nil, domerr.Validation("el cliente esta inactivo y no puede recibir documentos")
	}

	assignment := &model.DocumentAssignment{DocumentID: documentID, CustomerID: customerID}
	if err := s.repo.CreateAssignment(ctx, assignment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domerr.Conflict("el documento ya esta asignado a ese cliente")
		}
		return nil, err
	}
	assignment.Customer = customer
	resp := assignmentToResponse(assignment)
	return &resp, nil
}

func (s *documentService) Unassign(ctx context.Context, caller authz.Caller, assignmentID uuid.UUID) error {
	if err := authz.Require(caller, authz.EntityAssignment, authz.ActionDelete); err != nil {
		return err
	}
	if _, err := s.repo.FindAssignmentByID(ctx, assignmentID); err != nil {
		return domerr.NotFound("asignacion no encontrada")
	}
	return s.repo.DeleteAssignment(ctx, assignmentID)
}

func (s *documentService) ListAssignments(ctx context.Context, caller authz.Caller, documentID uuid.UUID) ([]dto.AssignmentResponse, error) {
	if err := authz.Require(caller, authz.EntityAssignment, authz.ActionRead); err != nil {
		return nil, err
	}
	if _, err := s.repo.FindByID(ctx, documentID); err != nil {
		return nil, domerr.NotFound("documento no encontrado")
	}
	assignments, err := s.repo.ListAssignmentsByDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.AssignmentResponse, len(assignments))
	for i := range assignments {
		resp[i] = assignmentToResponse(&assignments[i])
	}
	return resp, nil
}

func documentToResponse(d *model.Document) dto.DocumentResponse {
	uploaderName := ""
	if d.Uploader != nil {
		uploaderName = d.Uploader.Name
	}
	return dto.DocumentResponse{
		ID:             d.ID.String(),
		Name:           d.Name,
		URL:            d.URL,
		UploadedBy:     d.UploadedBy.String(),
		UploadedByName: uploaderName,
		CreatedAt:      d.CreatedAt.Format(time.RFC3339),
	}
}

func assignmentToResponse(a *model.DocumentAssignment) dto.AssignmentResponse {
	resp := dto.AssignmentResponse{
		ID:         a.ID.String(),
		DocumentID: a.DocumentID.String(),
		CustomerID: a.CustomerID.String(),
		AssignedAt: a.AssignedAt.Format(time.RFC3339),
	}
	if a.Customer != nil {
		resp.CustomerName = a.Customer.Name
		resp.CustomerEmail = a.Customer.Email
		resp.CustomerPhone = a.Customer.Phone
	}
	return resp
}
