// Package export turns ledger collections into CSV or JSON text for
// download. Pure serialization, no business logic.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"rayo-courier/internal/models"
)

const dateLayout = "02/01/2006"

// ToJSON renders any collection as indented JSON.
func ToJSON(v interface{}) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export.ToJSON: %w", err)
	}
	return data, nil
}

// OrdersToCSV renders the order ledger as CSV.
func OrdersToCSV(orders []*models.Order) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"ID", "Tanggal", "Pengirim", "WhatsApp", "Pickup", "Dropoff",
		"Kurir", "Status", "Jenis", "Service", "Ongkir", "Dana Talangan",
		"Bayar Ongkir", "COD Nominal", "COD Lunas", "Catatan",
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("export.OrdersToCSV: %w", err)
	}

	for _, o := range orders {
		kurir := ""
		if o.KurirID != nil {
			kurir = *o.KurirID
		}
		row := []string{
			o.ID,
			o.CreatedAt.Format(dateLayout),
			o.Pengirim.Nama,
			o.Pengirim.WA,
			o.PickupAlamat,
			o.DropoffAlamat,
			kurir,
			string(o.Status),
			o.JenisOrder,
			o.ServiceType,
			fmt.Sprintf("%d", o.Ongkir),
			fmt.Sprintf("%d", o.DanaTalangan),
			o.BayarOngkir,
			fmt.Sprintf("%d", o.COD.Nominal),
			boolYaTidak(o.COD.CODPaid),
			o.Notes,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("export.OrdersToCSV: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("export.OrdersToCSV: %w", err)
	}
	return buf.Bytes(), nil
}

// ContactsToCSV renders the address book as CSV.
func ContactsToCSV(contacts []*models.Contact) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Nama", "WhatsApp", "Alamat", "Tags", "Catatan", "Tanggal Dibuat", "Terakhir Dihubungi"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("export.ContactsToCSV: %w", err)
	}

	for _, c := range contacts {
		lastContacted := ""
		if c.LastContacted != nil {
			lastContacted = c.LastContacted.Format(dateLayout)
		}
		row := []string{
			c.Name,
			c.Whatsapp,
			c.Address,
			strings.Join(c.Tags, "; "),
			c.Notes,
			c.CreatedAt.Format(dateLayout),
			lastContacted,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("export.ContactsToCSV: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("export.ContactsToCSV: %w", err)
	}
	return buf.Bytes(), nil
}

func boolYaTidak(b bool) string {
	if b {
		return "Ya"
	}
	return "Tidak"
}
