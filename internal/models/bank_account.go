package models

// BankAccount хранит платежные реквизиты клуба в одном из банков каталога.
// Инвестиции ссылаются на банк по имени, а не по идентификатору, поэтому
// правка реквизитов администратором не затрагивает уже созданные инвестиции.
type BankAccount struct {
	ID            string `json:"id"`             // Идентификатор записи
	BankName      string `json:"bank_name"`      // Название банка из каталога
	AccountNumber string `json:"account_number"` // Номер счета
	IBAN          string `json:"iban"`           // IBAN для перевода
	HolderName    string `json:"holder_name"`    // Имя владельца счета
}

// DummyUpdateBankAccount используется для приёма правок реквизитов из JSON-запроса.
// Поля не валидируются по формату: реквизиты — витринные данные,
// система не взаимодействует с банками программно.
type DummyUpdateBankAccount struct {
	IBAN       string `json:"iban"`
	HolderName string `json:"holder_name"`
}
