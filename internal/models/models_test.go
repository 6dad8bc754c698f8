package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcularEdad(t *testing.T) {
	nacimiento := time.Date(2010, 6, 15, 0, 0, 0, 0, time.UTC)

	antes := time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 13, CalcularEdad(nacimiento, antes), "un día antes del cumpleaños")

	mismo := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 14, CalcularEdad(nacimiento, mismo), "el día del cumpleaños")

	despues := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 14, CalcularEdad(nacimiento, despues))
}

func TestCalcularIMC(t *testing.T) {
	// 70 kg, 175.5 cm -> 70 / 1.755^2 = 22.727... redondeado a 22.73
	assert.Equal(t, 22.73, CalcularIMC(70, 175.5))

	assert.Equal(t, 0.0, CalcularIMC(0, 175.5))
	assert.Equal(t, 0.0, CalcularIMC(70, 0))
	assert.Equal(t, 0.0, CalcularIMC(-70, 175.5))
}

func TestCalcularIndiceCornico(t *testing.T) {
	// 90 / 175.5 * 100 = 51.282... redondeado a 51.28
	assert.Equal(t, 51.28, CalcularIndiceCornico(90, 175.5))

	assert.Equal(t, 0.0, CalcularIndiceCornico(0, 175.5))
	assert.Equal(t, 0.0, CalcularIndiceCornico(90, 0))
}

func TestAtletaRecalcularDerivaEdad(t *testing.T) {
	nacimiento := NewFecha(time.Now().AddDate(-12, 0, -30))
	atleta := Atleta{
		FechaNacimiento: nacimiento,
		Edad:            99, // lo que venga del caller se descarta
	}
	atleta.Recalcular()
	assert.Equal(t, 12, atleta.Edad)
}

func TestPruebaAntropometricaRecalcular(t *testing.T) {
	alturaSentado := 90.0
	prueba := PruebaAntropometrica{
		Estatura:      175.5,
		Peso:          70,
		AlturaSentado: &alturaSentado,
	}
	prueba.Recalcular()

	require.NotNil(t, prueba.IndiceMasaCorporal)
	assert.Equal(t, 22.73, *prueba.IndiceMasaCorporal)
	require.NotNil(t, prueba.IndiceCornico)
	assert.Equal(t, 51.28, *prueba.IndiceCornico)
	assert.False(t, prueba.FechaRegistro.IsZero(), "la fecha de registro se estampa al guardar")
}

func TestPruebaAntropometricaRecalcularSinAlturaSentado(t *testing.T) {
	prueba := PruebaAntropometrica{Estatura: 160, Peso: 55}
	prueba.Recalcular()

	require.NotNil(t, prueba.IndiceMasaCorporal)
	assert.Nil(t, prueba.IndiceCornico)
}

func TestGrupoAceptaEdad(t *testing.T) {
	grupo := GrupoAtleta{RangoEdadMinima: 10, RangoEdadMaxima: 12}

	assert.True(t, grupo.AceptaEdad(10), "límite inferior inclusivo")
	assert.True(t, grupo.AceptaEdad(12), "límite superior inclusivo")
	assert.False(t, grupo.AceptaEdad(9))
	assert.False(t, grupo.AceptaEdad(13))
}

func TestFechaJSON(t *testing.T) {
	f, err := ParseFecha("2024-03-01")
	require.NoError(t, err)

	b, err := json.Marshal(f)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-01"`, string(b))

	var vacia Fecha
	b, err = json.Marshal(vacia)
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))

	var decodificada Fecha
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-01"`), &decodificada))
	assert.Equal(t, "2024-03-01", decodificada.String())

	err = json.Unmarshal([]byte(`"01/03/2024"`), &decodificada)
	assert.Error(t, err)
}

func TestTipoPruebaValido(t *testing.T) {
	assert.True(t, TipoPruebaValido("VELOCIDAD"))
	assert.False(t, TipoPruebaValido("velocidad"))
	assert.False(t, TipoPruebaValido("SALTO"))
}

func TestEtiquetaTipoPrueba(t *testing.T) {
	assert.Equal(t, "Coordinación", EtiquetaTipoPrueba(PruebaCoordinacion))
	assert.Equal(t, "Resistencia", EtiquetaTipoPrueba(PruebaResistencia))
}
