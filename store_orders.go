package folio

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/eringen/folio/views"
)

// CreateOrder records a purchase intent. The caller must have resolved the
// service already: Amount is the snapshotted price, never recomputed from the
// service later. Status fields default to pending when unset.
func (s *Store) CreateOrder(o views.Order) (string, error) {
	o.ID = uuid.NewString()
	if o.Status == "" {
		o.Status = views.OrderPending
	}
	if o.PaymentStatus == "" {
		o.PaymentStatus = views.PaymentPending
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(`INSERT INTO orders (id, service_id, customer_name, customer_email, customer_phone, message, status, payment_status, paypal_order_id, amount, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		o.ID, o.ServiceID, o.CustomerName, o.CustomerEmail, o.CustomerPhone, o.Message,
		o.Status, o.PaymentStatus, o.PayPalOrderID, o.Amount, o.CreatedAt.Format(time.RFC3339Nano))
	return o.ID, err
}

// ListOrders returns orders newest-first with the referenced service resolved.
// Order.Service is nil when the service has since been deleted.
func (s *Store) ListOrders() ([]views.Order, error) {
	rows, err := s.db.Query(`
		SELECT o.id, o.service_id, o.customer_name, o.customer_email, o.customer_phone, o.message,
		       o.status, o.payment_status, o.paypal_order_id, o.amount, o.created_at,
		       sv.id, sv.title, sv.description, sv.price, sv.features, sv.icon
		FROM orders o
		LEFT JOIN services sv ON sv.id = o.service_id
		ORDER BY o.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []views.Order
	for rows.Next() {
		var o views.Order
		var created string
		var svID, svTitle, svDesc, svFeatures, svIcon sql.NullString
		var svPrice sql.NullFloat64
		if err := rows.Scan(&o.ID, &o.ServiceID, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone, &o.Message,
			&o.Status, &o.PaymentStatus, &o.PayPalOrderID, &o.Amount, &created,
			&svID, &svTitle, &svDesc, &svPrice, &svFeatures, &svIcon); err != nil {
			return nil, err
		}
		o.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
		if svID.Valid {
			sv := views.Service{
				ID:          svID.String,
				Title:       svTitle.String,
				Description: svDesc.String,
				Price:       svPrice.Float64,
				Icon:        svIcon.String,
			}
			if err := decodeList(svFeatures.String, &sv.Features); err != nil {
				return nil, err
			}
			o.Service = &sv
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// GetOrder returns a single order by id without resolving the service.
func (s *Store) GetOrder(id string) (views.Order, error) {
	var o views.Order
	var created string
	err := s.db.QueryRow(`SELECT id, service_id, customer_name, customer_email, customer_phone, message, status, payment_status, paypal_order_id, amount, created_at FROM orders WHERE id = ?`, id).
		Scan(&o.ID, &o.ServiceID, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone, &o.Message,
			&o.Status, &o.PaymentStatus, &o.PayPalOrderID, &o.Amount, &created)
	if err != nil {
		return views.Order{}, err
	}
	o.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
	return o, nil
}

// UpdateOrderStatus sets the status of the order matching id. Unknown ids and
// unknown statuses are silent no-ops.
func (s *Store) UpdateOrderStatus(id, status string) error {
	valid := false
	for _, st := range views.OrderStatuses {
		if st == status {
			valid = true
			break
		}
	}
	if !valid {
		return nil
	}
	_, err := s.db.Exec(`UPDATE orders SET status = ? WHERE id = ?`, status, id)
	return err
}
