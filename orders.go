package folio

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/views"
)

// orderRequest is the JSON body posted by the public order form.
type orderRequest struct {
	ServiceID     string `json:"serviceId"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
	Message       string `json:"message"`
}

// handleOrderService accepts a public purchase intent. The referenced service
// must exist before anything is written; its current price is snapshotted into
// the order and never recomputed. No payment is processed here.
func (a *App) handleOrderService(c echo.Context) error {
	var req orderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request"})
	}
	req.ServiceID = strings.TrimSpace(req.ServiceID)
	if req.ServiceID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Service is required"})
	}

	service, err := a.Store.GetService(req.ServiceID)
	if err == sql.ErrNoRows {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Service not found"})
	}
	if err != nil {
		c.Logger().Errorf("order intake: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Server Error"})
	}

	orderID, err := a.Store.CreateOrder(views.Order{
		ServiceID:     service.ID,
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerEmail: strings.TrimSpace(req.CustomerEmail),
		CustomerPhone: strings.TrimSpace(req.CustomerPhone),
		Message:       req.Message,
		Amount:        service.Price,
	})
	if err != nil {
		c.Logger().Errorf("order intake: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Server Error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "orderId": orderID})
}

func (a *App) handleOrderList(c echo.Context) error {
	orders, err := a.Store.ListOrders()
	if err != nil {
		return err
	}
	return Render(c, views.AdminOrders(a.Config.site(), orders, CsrfToken(c)))
}

func (a *App) handleOrderStatus(c echo.Context) error {
	status := strings.TrimSpace(c.FormValue("status"))
	if err := a.Store.UpdateOrderStatus(c.Param("id"), status); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/orders")
}
