package usecase

import (
	"errors"
	"strings"

	"checkout_pro/internal/domain/entities"
)

var ErrPlanNotFound = errors.New("plan not found")

// IPlanUseCase exposes the plan catalog. The catalog is immutable and defined
// at process start; every PaymentIntent amount is taken from it at submission
// time, never from the request.

type IPlanUseCase interface {
	List() []entities.Plan
	GetByID(id string) (entities.Plan, error)
}

type PlanUseCase struct {
	plans []entities.Plan
}

var _ IPlanUseCase = (*PlanUseCase)(nil)

func NewPlanUseCase() *PlanUseCase {
	return &PlanUseCase{plans: defaultPlans()}
}

func (u *PlanUseCase) List() []entities.Plan {
	out := make([]entities.Plan, len(u.plans))
	copy(out, u.plans)
	return out
}

func (u *PlanUseCase) GetByID(id string) (entities.Plan, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Plan{}, ErrPlanNotFound
	}
	for _, p := range u.plans {
		if p.ID == id {
			return p, nil
		}
	}
	return entities.Plan{}, ErrPlanNotFound
}

func defaultPlans() []entities.Plan {
	return []entities.Plan{
		{
			ID:            "starter",
			Name:          "Starter",
			Description:   "Perfeito para começar",
			Price:         49,
			OriginalPrice: 79,
			Features: []string{
				"Até 1.000 análises de dados por mês",
				"Dashboard básico",
				"Relatórios em PDF",
				"Suporte por email",
				"Integração com 3 plataformas",
			},
		},
		{
			ID:            "pro",
			Name:          "Professional",
			Description:   "Ideal para profissionais",
			Price:         99,
			OriginalPrice: 149,
			Features: []string{
				"Até 10.000 análises por mês",
				"Dashboard avançado com IA",
				"Relatórios personalizados",
				"Suporte prioritário 24/7",
				"Integração ilimitada",
				"API personalizada",
				"Alertas em tempo real",
			},
			Popular: true,
		},
		{
			ID:            "enterprise",
			Name:          "Enterprise",
			Description:   "Para grandes empresas",
			Price:         199,
			OriginalPrice: 299,
			Features: []string{
				"Análises ilimitadas",
				"Dashboard white-label",
				"Relatórios avançados com IA",
				"Gerente de conta dedicado",
				"Integrações customizadas",
				"SLA garantido",
				"Treinamento da equipe",
				"Consultoria estratégica",
			},
		},
	}
}
