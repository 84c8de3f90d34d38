package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopcore/commerce-api/common"
	customerDal "github.com/shopcore/commerce-api/customer/dal"
	"github.com/shopcore/commerce-api/framework/connection"
	"github.com/shopcore/commerce-api/logger"
)

// ExportService writes periodic snapshots of the customers collection to
// Cloud Storage as newline-delimited JSON.
type ExportService struct {
	loggerProvider logger.Provider
	conn           *connection.Connection
	customersDAL   customerDal.Customers
	bucket         string
}

func NewExportService(loggerProvider logger.Provider, conn *connection.Connection) *ExportService {
	return &ExportService{
		loggerProvider: loggerProvider,
		conn:           conn,
		customersDAL:   customerDal.NewCustomersFirestoreWithClient(conn.Firestore),
		bucket:         common.GetExportsBucket(),
	}
}

// exportedCustomer is the snapshot row. Credentials never leave the system.
type exportedCustomer struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone,omitempty"`
	Address          string    `json:"address,omitempty"`
	BillingAccountID string    `json:"billingAccountId,omitempty"`
	TimeCreated      time.Time `json:"timeCreated"`
}

// ExportCustomers writes one snapshot object named by the export time. A row
// that fails to encode is logged and skipped; the export keeps going.
func (s *ExportService) ExportCustomers(ctx context.Context) (string, error) {
	l := s.loggerProvider(ctx)

	customers, err := s.customersDAL.ListCustomers(ctx)
	if err != nil {
		return "", err
	}

	object := fmt.Sprintf("customers/%s.ndjson", time.Now().UTC().Format("2006-01-02T15-04-05"))

	w := s.conn.CloudStorage(ctx).Bucket(s.bucket).Object(object).NewWriter(ctx)
	w.ContentType = "application/x-ndjson"

	enc := json.NewEncoder(w)

	var exported int

	for _, customer := range customers {
		row := exportedCustomer{
			ID:               customer.ID,
			Name:             customer.Name,
			Email:            customer.Email,
			Phone:            customer.Phone,
			Address:          customer.Address,
			BillingAccountID: customer.BillingAccountID,
			TimeCreated:      customer.TimeCreated,
		}

		if err := enc.Encode(row); err != nil {
			l.Errorf("skipping customer %s in export: %s", customer.ID, err)
			continue
		}

		exported++
	}

	if err := w.Close(); err != nil {
		return "", err
	}

	l.Infof("exported %d customers to gs://%s/%s", exported, s.bucket, object)

	return object, nil
}
