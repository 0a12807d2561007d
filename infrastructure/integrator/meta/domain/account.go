package metadomain

// AccountInfo são os metadados da conta de anúncio retornados pelo upstream
type AccountInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Currency string `json:"currency"`
	Timezone string `json:"timezone_name"`
	Status   int    `json:"account_status"`
}

// Cursors e Paging seguem o formato de paginação da Graph API
type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next,omitempty"`
}
