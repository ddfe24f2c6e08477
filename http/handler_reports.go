package http

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"boxoffice/entities"
	"boxoffice/report"
	"boxoffice/session"

	"github.com/labstack/echo/v4"
)

type salesReportResponse struct {
	Reports []entities.EventReport `json:"reports"`
	Totals  entities.ReportTotals  `json:"totals"`
}

func (h Handler) PostReconcile(c echo.Context) error {
	cmd := entities.ReconcileBookings{
		Header: entities.NewEventHeader(),
	}

	if err := h.cmdBus.Send(c.Request().Context(), cmd); err != nil {
		return fmt.Errorf("could not send reconcile command: %w", err)
	}

	return c.NoContent(http.StatusAccepted)
}

func (h Handler) GetSalesReport(c echo.Context) error {
	reports, err := h.buildSalesReports(c)
	if errors.Is(err, session.ErrAuthExpired) {
		return echo.NewHTTPError(http.StatusUnauthorized, "session expired")
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, salesReportResponse{
		Reports: reports,
		Totals:  report.Totals(reports),
	})
}

func (h Handler) GetSalesReportExport(c echo.Context) error {
	reports, err := h.buildSalesReports(c)
	if errors.Is(err, session.ErrAuthExpired) {
		return echo.NewHTTPError(http.StatusUnauthorized, "session expired")
	}
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := report.RenderTables(&buf, reports); err != nil {
		return fmt.Errorf("could not render report: %w", err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="sales-report.txt"`)

	return c.Blob(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
}

func (h Handler) buildSalesReports(c echo.Context) ([]entities.EventReport, error) {
	ctx := c.Request().Context()
	token := c.Get(tokenContextKey).(string)

	events, err := h.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list events: %w", err)
	}
	venues, err := h.venueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list venues: %w", err)
	}

	guarded := session.GuardEventData(h.eventData, h.sessions, token)

	return report.NewBuilder(guarded).Build(ctx, events, venues)
}
