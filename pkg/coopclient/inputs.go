package coopclient

// Fields is a partial update body; only the keys present are changed.
type Fields map[string]any

// RegisterInput is the body of Register.
type RegisterInput struct {
	BusinessName   string `json:"businessName"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	Password       string `json:"password"`
	MembershipType string `json:"membershipType,omitempty"`
}

// BusinessInput is the body of CreateBusiness.
type BusinessInput struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Services    []string `json:"services,omitempty"`
	Location    string   `json:"location"`
	Address     string   `json:"address,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	Email       string   `json:"email,omitempty"`
	Website     string   `json:"website,omitempty"`
	OwnerName   string   `json:"ownerName,omitempty"`
	Logo        string   `json:"logo,omitempty"`
	Status      string   `json:"status,omitempty"`
}

// BusinessDetailInput is the body of CreateBusinessDetail.
type BusinessDetailInput struct {
	Name         string   `json:"name"`
	Category     string   `json:"category,omitempty"`
	Description  string   `json:"description,omitempty"`
	Address      string   `json:"address,omitempty"`
	Phone        string   `json:"phone,omitempty"`
	Email        string   `json:"email,omitempty"`
	Website      string   `json:"website,omitempty"`
	OpeningHours string   `json:"openingHours,omitempty"`
	Services     []string `json:"services,omitempty"`
	Images       []string `json:"images,omitempty"`
	Status       string   `json:"status,omitempty"`
}

// NoticeInput is the body of CreateNotice.
type NoticeInput struct {
	Title     string          `json:"title"`
	Content   string          `json:"content"`
	Type      string          `json:"type,omitempty"`
	Important bool            `json:"important,omitempty"`
	Status    string          `json:"status,omitempty"`
	Author    string          `json:"author,omitempty"`
	Document  *NoticeDocument `json:"document,omitempty"`
}

// SearchParams narrows a directory search. Zero values are omitted.
type SearchParams struct {
	Query    string
	Category string
	Location string
	Page     int
	Limit    int
}

// NoticeFilter narrows the public notice list.
type NoticeFilter struct {
	Type          string
	ImportantOnly bool
}
