package azuresql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResourceGroupFromID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want string
	}{
		{
			name: "full database ID",
			id:   "/subscriptions/abc/resourceGroups/prod-rg/providers/Microsoft.Sql/servers/srv/databases/db",
			want: "prod-rg",
		},
		{
			name: "case insensitive segment",
			id:   "/subscriptions/abc/resourcegroups/Other-RG/providers/Microsoft.Sql/servers/srv",
			want: "Other-RG",
		},
		{name: "no resource group", id: "/subscriptions/abc", want: ""},
		{name: "empty", id: "", want: ""},
		{name: "trailing segment only", id: "/resourceGroups", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resourceGroupFromID(tt.id))
		})
	}
}
