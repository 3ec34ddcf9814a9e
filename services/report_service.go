package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/YibestBelay/shegaCafe/entity"
	"github.com/YibestBelay/shegaCafe/pkg/apperr"
	"github.com/YibestBelay/shegaCafe/pkg/authz"
	"github.com/YibestBelay/shegaCafe/repository"

	"github.com/tealeg/xlsx"
)

// ReportService renders the admin sales report as a spreadsheet download.
type ReportService struct {
	orderRepo *repository.OrderRepository
}

func NewReportService(orderRepo *repository.OrderRepository) *ReportService {
	return &ReportService{orderRepo: orderRepo}
}

// SalesReport returns the report bytes for all current orders.
func (s *ReportService) SalesReport(actorRole string) ([]byte, error) {
	if !authz.Allowed(actorRole, authz.ActionExportReports) {
		return nil, apperr.Unauthorized("Admin only")
	}

	orders, err := s.orderRepo.ListOrders()
	if err != nil {
		return nil, apperr.Upstream(err)
	}
	return buildSalesReport(orders)
}

func buildSalesReport(orders []entity.Order) ([]byte, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Sales Report")
	if err != nil {
		return nil, apperr.Upstream(err)
	}

	headers := []string{"ID", "Customer", "Items", "Table", "Total", "Status", "Payment", "Time"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetValue(h)
	}

	for _, o := range orders {
		row := sheet.AddRow()
		row.AddCell().SetValue(o.ID)
		row.AddCell().SetValue(o.CustomerName)
		row.AddCell().SetValue(itemsSummary(o.Items))
		row.AddCell().SetValue(o.TableNumber)
		row.AddCell().SetValue(fmt.Sprintf("%.2f ETB", o.Total))
		row.AddCell().SetValue(o.Status)
		row.AddCell().SetValue(o.PaymentStatus)
		row.AddCell().SetValue(o.Timestamp.Format("2006-01-02 15:04"))
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, apperr.Upstream(err)
	}
	return buf.Bytes(), nil
}

// itemsSummary renders "2x Injera, 1x Macchiato" style lines.
func itemsSummary(items []entity.OrderItem) string {
	if len(items) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(items))
	for _, it := range items {
		name := it.MenuItem.Name
		if name == "" {
			name = fmt.Sprintf("Item #%d", it.MenuItemID)
		}
		parts = append(parts, fmt.Sprintf("%dx %s", it.Quantity, name))
	}
	return strings.Join(parts, ", ")
}
