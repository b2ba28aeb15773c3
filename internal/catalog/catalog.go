// Package catalog содержит неизменяемый каталог VIP-планов и список банков.
// Каталог — статические входные данные для остальных компонентов:
// записи не имеют жизненного цикла и не хранятся в базе.
package catalog

// ReturnOption — один из двух гарантированных вариантов доходности плана.
type ReturnOption struct {
	Gain int64 `json:"gain"` // Выплата по завершении, KZ
	Days int   `json:"days"` // Срок созревания в днях
}

// VIPPlan — запись каталога: фиксированная сумма вложения и два варианта
// доходности (50% за 7 дней, 75% за 20 дней).
type VIPPlan struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Amount   int64        `json:"amount"`
	Return50 ReturnOption `json:"return50"`
	Return75 ReturnOption `json:"return75"`
}

var vipPlans = []VIPPlan{
	{ID: "vip0", Name: "VIP 0", Amount: 10000, Return50: ReturnOption{Gain: 15000, Days: 7}, Return75: ReturnOption{Gain: 17500, Days: 20}},
	{ID: "vip1", Name: "VIP 1", Amount: 30000, Return50: ReturnOption{Gain: 45000, Days: 7}, Return75: ReturnOption{Gain: 52500, Days: 20}},
	{ID: "vip2", Name: "VIP 2", Amount: 70000, Return50: ReturnOption{Gain: 105000, Days: 7}, Return75: ReturnOption{Gain: 122500, Days: 20}},
	{ID: "vip3", Name: "VIP 3", Amount: 120000, Return50: ReturnOption{Gain: 180000, Days: 7}, Return75: ReturnOption{Gain: 210000, Days: 20}},
	{ID: "vip4", Name: "VIP 4", Amount: 310000, Return50: ReturnOption{Gain: 465000, Days: 7}, Return75: ReturnOption{Gain: 542500, Days: 20}},
	{ID: "vip5", Name: "VIP 5", Amount: 620000, Return50: ReturnOption{Gain: 930000, Days: 7}, Return75: ReturnOption{Gain: 1085000, Days: 20}},
}

var banks = []string{"BFA", "BAI", "Atlântico", "BIC", "Banco SOL"}

// Plans возвращает копию списка VIP-планов.
func Plans() []VIPPlan {
	result := make([]VIPPlan, len(vipPlans))
	copy(result, vipPlans)
	return result
}

// PlanByID возвращает план по идентификатору или nil, если план не найден.
func PlanByID(id string) *VIPPlan {
	for i := range vipPlans {
		if vipPlans[i].ID == id {
			p := vipPlans[i]
			return &p
		}
	}
	return nil
}

// Option возвращает вариант доходности плана по коду "50" или "75".
func (p *VIPPlan) Option(option string) ReturnOption {
	if option == "75" {
		return p.Return75
	}
	return p.Return50
}

// Banks возвращает копию списка банков.
func Banks() []string {
	result := make([]string, len(banks))
	copy(result, banks)
	return result
}

// IsKnownBank сообщает, присутствует ли банк в каталоге.
func IsKnownBank(name string) bool {
	for _, b := range banks {
		if b == name {
			return true
		}
	}
	return false
}
