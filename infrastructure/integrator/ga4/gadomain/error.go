package gadomain

// ErrorResponse representa o envelope de erro das APIs do Google
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da Data API
type ErrorDetails struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// IsPermissionDenied indica conta de serviço sem acesso à propriedade
func (e *ErrorResponse) IsPermissionDenied() bool {
	return e.Error.Status == "PERMISSION_DENIED" || e.Error.Code == 403
}

// IsUnauthenticated indica token inválido ou expirado
func (e *ErrorResponse) IsUnauthenticated() bool {
	return e.Error.Status == "UNAUTHENTICATED" || e.Error.Code == 401
}
