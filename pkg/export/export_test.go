package export

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"rayo-courier/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrdersToCSV(t *testing.T) {
	kurir := "kurir-1"
	order := &models.Order{
		ID:            "o1",
		CreatedAt:     time.Date(2025, 3, 10, 14, 0, 0, 0, time.Local),
		Pengirim:      models.Pengirim{Nama: "Budi", WA: "08123456789"},
		PickupAlamat:  "Jl. Merdeka No. 10",
		DropoffAlamat: "Jl. Asia Afrika No. 25",
		KurirID:       &kurir,
		Status:        models.StatusSelesai,
		JenisOrder:    models.JenisBarang,
		ServiceType:   models.ServiceReguler,
		Ongkir:        15000,
		BayarOngkir:   models.BayarOngkirCOD,
		COD:           models.CODDetail{Nominal: 50000, CODPaid: true},
	}

	data, err := OrdersToCSV([]*models.Order{order})
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "ID", rows[0][0])
	assert.Equal(t, "o1", rows[1][0])
	assert.Equal(t, "10/03/2025", rows[1][1])
	assert.Equal(t, "kurir-1", rows[1][6])
	assert.Equal(t, "SELESAI", rows[1][7])
	assert.Equal(t, "50000", rows[1][13])
	assert.Equal(t, "Ya", rows[1][14])
}

func TestOrdersToCSV_UnassignedOrder(t *testing.T) {
	order := &models.Order{ID: "o1", CreatedAt: time.Now(), Status: models.StatusMenungguPickup}

	data, err := OrdersToCSV([]*models.Order{order})
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "", rows[1][6])
	assert.Equal(t, "Tidak", rows[1][14])
}

func TestContactsToCSV(t *testing.T) {
	last := time.Date(2025, 3, 9, 8, 0, 0, 0, time.Local)
	contact := &models.Contact{
		ID:            "c1",
		Name:          "Budi",
		Whatsapp:      "08123456789",
		Address:       "Jl. Merdeka No. 10",
		Tags:          []string{"pengirim", "langganan"},
		CreatedAt:     time.Date(2025, 1, 2, 0, 0, 0, 0, time.Local),
		LastContacted: &last,
	}

	data, err := ContactsToCSV([]*models.Contact{contact})
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "pengirim; langganan", rows[1][3])
	assert.Equal(t, "02/01/2025", rows[1][5])
	assert.Equal(t, "09/03/2025", rows[1][6])
}

func TestToJSON(t *testing.T) {
	data, err := ToJSON([]string{"a"})
	require.NoError(t, err)
	assert.JSONEq(t, `["a"]`, string(data))
}
