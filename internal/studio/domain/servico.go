package domain

// Servico is an external service-booking document referenced by a client
// record. Lookup is a consumed capability; the directory only stores ids.
type Servico struct {
	ID        string `json:"id"`
	Nome      string `json:"nome"`
	Descricao string `json:"descricao,omitempty"`
	Data      string `json:"data,omitempty"`
}

// PlaceholderServico stands in for a service document that could not be
// fetched, so one broken reference never fails a whole response.
func PlaceholderServico(id string) Servico {
	return Servico{ID: id, Nome: "Serviço indisponível"}
}
