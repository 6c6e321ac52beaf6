package document

type Document struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	UploadDate string `json:"upload_date"`
	URL        string `json:"url"`
}
