package dto

type CreateDocumentRequest struct {
	Name string `json:"name" validate:"required,min=2"`
	URL  string `json:"url"  validate:"required,url"`
}

type DocumentResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	URL            string `json:"url"`
	UploadedBy     string `json:"uploaded_by"`
	UploadedByName string `json:"uploaded_by_name,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type AssignDocumentRequest struct {
	CustomerID string `json:"customer_id" validate:"required,uuid"`
}

// AssignmentResponse rows are enriched with the customer's contact data for
// the console's assignment listing.
type AssignmentResponse struct {
	ID            string  `json:"id"`
	DocumentID    string  `json:"document_id"`
	CustomerID    string  `json:"customer_id"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	CustomerPhone *string `json:"customer_phone"`
	AssignedAt    string  `json:"assigned_at"`
}

type DocumentFilter struct {
	Search string `form:"q"`
}
