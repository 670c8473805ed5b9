package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// acceptedResponse acknowledges asynchronous work that was queued, not done.
type acceptedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
}

// pageMeta is the pagination envelope attached to every list response.
type pageMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// pageQuery binds the common ?page and ?limit parameters.
type pageQuery struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}
