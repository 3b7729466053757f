package handler

import (
	"net/http"

	"github.com/vfg2006/representative-ranking-api/internal/api/handler/router"
	"github.com/vfg2006/representative-ranking-api/internal/usecases/goaling"
	"github.com/vfg2006/representative-ranking-api/internal/usecases/ranking"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func RepresentativeRanking(service ranking.RankingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/representatives/ranking",
			Method:  http.MethodGet,
			Handler: GetRepresentativeRanking(service),
		},
	}
}

// Goals retorna as rotas da interface de manutenção de metas
func Goals(service goaling.GoalService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/goals",
			Method:  http.MethodGet,
			Handler: ListGoals(service),
		},
		{
			Path:    "/v1/goals",
			Method:  http.MethodPost,
			Handler: UpsertGoal(service),
		},
	}
}
