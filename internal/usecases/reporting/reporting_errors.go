package reporting

import "errors"

var (
	// Erros de validação de datas
	ErrInvalidDateFormat     = errors.New("invalid date format")
	ErrInvalidRange          = errors.New("start date cannot be after end date")
	ErrMissingQueryParameter = errors.New("Start date and end date are required")

	// Erros do GA4, nunca chegam ao usuário: viram dados de exemplo
	ErrUpstreamUnavailable = errors.New("analytics upstream unavailable")
	ErrNoData              = errors.New("no data found")
)

// IsValidationError indica erros que devem ser exibidos ao usuário com opção de tentar novamente
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidDateFormat) ||
		errors.Is(err, ErrInvalidRange) ||
		errors.Is(err, ErrMissingQueryParameter)
}
