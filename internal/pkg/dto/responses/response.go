package responses

type Pagination struct {
	Total    int    `json:"total"`
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
	NextURL  string `json:"nextUrl,omitempty"`
	PrevURL  string `json:"prevUrl,omitempty"`
}

type ResponseDTO struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}
