package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequired(t *testing.T) {
	assert.True(t, Required("hola"))
	assert.True(t, Required(" x "))
	assert.False(t, Required(""))
	assert.False(t, Required("   "))
	assert.False(t, Required("\t\n"))
}

func TestEmail(t *testing.T) {
	assert.True(t, Email("juana@example.com"))
	assert.True(t, Email("a.b+c@sub.dominio.pe"))
	assert.False(t, Email("juana@example"))
	assert.False(t, Email("juana example.com"))
	assert.False(t, Email("@example.com"))
	assert.False(t, Email(""))
}

func TestPhone(t *testing.T) {
	assert.True(t, Phone("987654321"))
	assert.True(t, Phone("+51 (1) 555-0199"))
	assert.False(t, Phone("12345"))
	assert.False(t, Phone("telefono"))
	assert.False(t, Phone(""))
}

func TestValidSlug(t *testing.T) {
	assert.True(t, ValidSlug("lomo-saltado"))
	assert.True(t, ValidSlug("menu2"))
	assert.False(t, ValidSlug("Lomo Saltado"))
	assert.False(t, ValidSlug("con_guion_bajo"))
	assert.False(t, ValidSlug(""))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "lomo-saltado", Slugify("Lomo Saltado"))
	assert.True(t, ValidSlug(Slugify("Ají de Gallina!")))
}
