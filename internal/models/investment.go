package models

import "time"

// InvestmentStatus описывает состояние инвестиции в жизненном цикле.
type InvestmentStatus string

// Состояния инвестиции. Переходы: PENDING -> ACTIVE (активация администратором),
// ACTIVE -> WITHDRAWAL_PENDING (запрос вывода после созревания),
// WITHDRAWAL_PENDING -> PAID (подтверждение выплаты администратором).
// COMPLETED и CANCELLED объявлены в модели, но ни одна операция их не создает.
const (
	StatusPending           InvestmentStatus = "PENDING"
	StatusActive            InvestmentStatus = "ACTIVE"
	StatusCompleted         InvestmentStatus = "COMPLETED"
	StatusCancelled         InvestmentStatus = "CANCELLED"
	StatusWithdrawalPending InvestmentStatus = "WITHDRAWAL_PENDING"
	StatusPaid              InvestmentStatus = "PAID"
)

// Варианты доходности плана.
const (
	Option50 = "50"
	Option75 = "75"
)

// Investment представляет покупку плана участником по выбранному варианту доходности.
// ExpectedGain и EndDate фиксируются в момент создания и больше не пересчитываются.
type Investment struct {
	ID           string           `json:"id"`            // Уникальный идентификатор инвестиции
	UserUID      string           `json:"user_uid"`      // Владелец инвестиции
	PlanID       string           `json:"plan_id"`       // Идентификатор VIP-плана из каталога
	Option       string           `json:"option"`        // Выбранный вариант доходности, "50" или "75"
	Amount       int64            `json:"amount"`        // Сумма вложения в KZ
	ExpectedGain int64            `json:"expected_gain"` // Ожидаемая выплата, зафиксированная при создании
	StartDate    time.Time        `json:"start_date"`    // Дата создания
	EndDate      time.Time        `json:"end_date"`      // Дата созревания: StartDate + срок выбранного варианта
	Status       InvestmentStatus `json:"status"`        // Текущее состояние
	DaysPassed   int              `json:"days_passed"`   // Количество прошедших дней (историческое поле витрины)
	BankName     string           `json:"bank_name"`     // Банк, выбранный для перевода
}

// IsOpen сообщает, занимает ли инвестиция слот лимита одновременных вложений.
func (i *Investment) IsOpen() bool {
	return i.Status == StatusPending || i.Status == StatusActive
}

// IsMatured сообщает, созрела ли инвестиция к моменту now.
// Созревание — производный предикат, он вычисляется по запросу,
// фоновых переходов по таймеру в системе нет.
func (i *Investment) IsMatured(now time.Time) bool {
	return !now.Before(i.EndDate)
}

// DummyCreateInvestment используется для приёма данных покупки плана из JSON-запроса.
type DummyCreateInvestment struct {
	PlanID   string `json:"plan_id" validate:"required"`            // VIP-план из каталога
	Option   string `json:"option" validate:"required,oneof=50 75"` // Вариант доходности
	BankName string `json:"bank_name" validate:"required"`          // Банк для перевода
}

// DummyWithdraw используется для приёма запроса на вывод средств.
// Method и Details — способ получения выплаты (IBAN банка или криптокошелек).
type DummyWithdraw struct {
	Method  string `json:"method" validate:"required"`
	Details string `json:"details" validate:"required"`
}

// InvestmentInfo — строка очереди сверки в админ-панели:
// инвестиция вместе с именем её владельца.
type InvestmentInfo struct {
	Investment
	Username string `json:"username"`
}

// Summary — сводка витрины пользователя: ожидаемый доход по активным
// инвестициям и суммарно полученные выплаты.
type Summary struct {
	PendingYield  int64 `json:"pending_yield"`
	TotalReceived int64 `json:"total_received"`
}

// AdminStats — четыре карточки админ-панели.
type AdminStats struct {
	TotalCollected int64 `json:"total_collected"` // Сумма всех вложений
	TotalPaid      int64 `json:"total_paid"`      // Накопительный счетчик выплат
	Investors      int   `json:"investors"`       // Количество зарегистрированных участников
	PendingCount   int   `json:"pending_count"`   // Инвестиции, ожидающие активации
}
