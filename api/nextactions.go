package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"pdm-api/domain"
)

// getNextActions fetches every pending task and hands the set to the ranking
// engine. The heavy lifting happens in domain.RankNextActions; this handler
// only parses parameters and times the stages.
func getNextActions(store NextActionStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) (err error) {
		metrics := newNextActionMetrics(logger)
		defer func() {
			metrics.Log(c.Response().Status, err)
		}()

		limit := domain.DefaultNextActionLimit
		if raw := c.QueryParam("limit"); raw != "" {
			n, parseErr := strconv.Atoi(raw)
			if parseErr != nil {
				metrics.SetErrorStage("invalid_limit")
				err = badRequest(c, "invalid limit")
				return err
			}
			limit = domain.ClampNextActionLimit(n)
		}
		includeWhy := c.QueryParam("includeWhy") == "true"
		metrics.SetWhyRequested(includeWhy)

		fetchStart := time.Now()
		candidates, fetchErr := store.ListPendingNextActions(c.Request().Context())
		metrics.ObserveFetch(time.Since(fetchStart))
		if fetchErr != nil {
			metrics.SetErrorStage("storage")
			err = serverError(c, logger, "next actions", fetchErr)
			return err
		}
		metrics.SetCandidates(len(candidates))

		rankStart := time.Now()
		actions := domain.RankNextActions(candidates, limit, includeWhy, time.Now().UTC())
		metrics.ObserveRank(time.Since(rankStart))
		metrics.SetActionsReturned(len(actions))

		err = c.JSON(http.StatusOK, actions)
		if err != nil {
			metrics.SetErrorStage("encode_response")
		}
		return err
	}
}
