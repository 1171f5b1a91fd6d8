package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/beatriciramos/CRM-Frontend/pkg/sdk"
)

func TestFilterAttendances(t *testing.T) {
	attendances := []sdk.Attendance{
		{ID: "1", Subject: "Pedido atrasado", Status: sdk.AttendanceOpen, Channel: sdk.ChannelCall,
			Customer: &sdk.Customer{Name: "Loja Azul"}},
		{ID: "2", Subject: "Troca de produto", Status: sdk.AttendanceClosed, Channel: sdk.ChannelWhatsApp,
			Notes: "cliente satisfeito"},
		{ID: "3", Subject: "Nota fiscal", Status: sdk.AttendanceOpen, Channel: sdk.ChannelEmail},
	}

	got := filterAttendances(attendances, "", "open", "")
	assert.Len(t, got, 2)

	got = filterAttendances(attendances, "", "CLOSED", "")
	assert.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	got = filterAttendances(attendances, "", "", "whatsapp")
	assert.Len(t, got, 1)

	// Search covers subject, notes and the embedded customer name.
	got = filterAttendances(attendances, "azul", "", "")
	assert.Len(t, got, 1)
	got = filterAttendances(attendances, "satisfeito", "", "")
	assert.Len(t, got, 1)

	got = filterAttendances(attendances, "fiscal", "closed", "")
	assert.Empty(t, got)
}
