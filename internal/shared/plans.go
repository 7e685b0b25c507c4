package shared

// Тарифные планы покупки кредитов
type PlanID string

const (
	PlanBasic    PlanID = "Basic"
	PlanAdvanced PlanID = "Advanced"
	PlanBusiness PlanID = "Business"
)

type Plan struct {
	Credits int64
	Amount  int64
}

// Валидные планы: кредиты и цена в основных единицах валюты
var Plans = map[PlanID]Plan{
	PlanBasic:    {Credits: 100, Amount: 10},
	PlanAdvanced: {Credits: 500, Amount: 50},
	PlanBusiness: {Credits: 1000, Amount: 250},
}
