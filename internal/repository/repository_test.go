package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dfmorales/basketball-api/internal/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Usuario{},
		&models.GrupoAtleta{},
		&models.Entrenador{},
		&models.EstudianteVinculacion{},
		&models.Atleta{},
		&models.Inscripcion{},
		&models.PruebaAntropometrica{},
		&models.PruebaFisica{},
	))
	return db
}

func nuevoAtleta(t *testing.T, db *gorm.DB, dni string) *models.Atleta {
	t.Helper()
	repo := NewAtletaRepository(db)
	atleta := &models.Atleta{
		NombreAtleta:    "Juan",
		ApellidoAtleta:  "Pérez",
		DNI:             dni,
		FechaNacimiento: models.NewFecha(time.Now().AddDate(-12, 0, 0)),
		Sexo:            "M",
		Estado:          true,
	}
	require.NoError(t, repo.Create(atleta))
	return atleta
}

func TestFindByIDAusente(t *testing.T) {
	repo := NewAtletaRepository(testDB(t))

	atleta, err := repo.FindByID(999)
	require.NoError(t, err, "la ausencia no es un error")
	assert.Nil(t, atleta)
}

func TestCreateRecalculaDerivados(t *testing.T) {
	db := testDB(t)
	atleta := nuevoAtleta(t, db, "100")

	assert.NotZero(t, atleta.ID)
	assert.Equal(t, 12, atleta.Edad, "la edad sale de la fecha de nacimiento")
}

func TestSoftDeleteYRestore(t *testing.T) {
	db := testDB(t)
	repo := NewAtletaRepository(db)
	atleta := nuevoAtleta(t, db, "200")

	ok, err := repo.Delete(atleta.ID, true)
	require.NoError(t, err)
	assert.True(t, ok)

	// La fila sigue existiendo con estado=false.
	guardado, err := repo.FindByID(atleta.ID)
	require.NoError(t, err)
	require.NotNil(t, guardado)
	assert.False(t, guardado.Estado)

	activos, err := repo.FindAll(true)
	require.NoError(t, err)
	assert.Empty(t, activos)

	ok, err = repo.Restore(atleta.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	activos, err = repo.FindAll(true)
	require.NoError(t, err)
	assert.Len(t, activos, 1)
}

func TestSoftDeleteInscripcionUsaHabilitada(t *testing.T) {
	db := testDB(t)
	atleta := nuevoAtleta(t, db, "300")
	repo := NewInscripcionRepository(db)

	ins := &models.Inscripcion{
		AtletaID:         atleta.ID,
		FechaInscripcion: models.Hoy(),
		TipoInscripcion:  models.InscripcionNueva,
		Habilitada:       true,
	}
	require.NoError(t, repo.Create(ins))

	ok, err := repo.Delete(ins.ID, true)
	require.NoError(t, err)
	assert.True(t, ok)

	guardada, err := repo.FindByID(ins.ID)
	require.NoError(t, err)
	require.NotNil(t, guardada)
	assert.False(t, guardada.Habilitada)
}

func TestDeleteEntrenadorSiempreEsDuro(t *testing.T) {
	db := testDB(t)
	usuario := &models.Usuario{
		Nombre: "Ana", Apellido: "Ruiz", Email: "ana@club.ec",
		Clave: "x", DNI: "900", Rol: models.RolEntrenador, Estado: true,
	}
	require.NoError(t, db.Create(usuario).Error)

	repo := NewEntrenadorRepository(db)
	entrenador := &models.Entrenador{UsuarioID: usuario.ID, Especialidad: "Tiro", ClubAsignado: "Centro"}
	require.NoError(t, repo.Create(entrenador))

	// El entrenador no declara columna de borrado lógico: soft=true borra igual.
	ok, err := repo.Delete(entrenador.ID, true)
	require.NoError(t, err)
	assert.True(t, ok)

	guardado, err := repo.FindByID(entrenador.ID)
	require.NoError(t, err)
	assert.Nil(t, guardado)

	ok, err = repo.Restore(entrenador.ID)
	require.NoError(t, err)
	assert.False(t, ok, "sin columna de estado no hay restauración")
}

func TestFindByCriteriaOperadores(t *testing.T) {
	db := testDB(t)
	atleta := nuevoAtleta(t, db, "400")
	repo := NewPruebaFisicaRepository(db)

	for _, resultado := range []float64{5, 10, 15} {
		require.NoError(t, repo.Create(&models.PruebaFisica{
			AtletaID:     atleta.ID,
			TipoPrueba:   models.PruebaVelocidad,
			Resultado:    resultado,
			UnidadMedida: "seg",
			Estado:       true,
		}))
	}

	casos := []struct {
		criteria map[string]interface{}
		esperado int
	}{
		{map[string]interface{}{"resultado__gte": 10.0}, 2},
		{map[string]interface{}{"resultado__gt": 10.0}, 1},
		{map[string]interface{}{"resultado__lte": 10.0}, 2},
		{map[string]interface{}{"resultado__lt": 10.0}, 1},
		{map[string]interface{}{"resultado": 10.0}, 1},
		{map[string]interface{}{"resultado__gte": 0.0}, 3}, // el cero numérico sí aplica
		{map[string]interface{}{"unidad_medida": ""}, 3},   // la cadena vacía se omite
		{map[string]interface{}{"unidad_medida": nil}, 3},  // nil se omite
	}
	for _, caso := range casos {
		pruebas, err := repo.FindByCriteria(caso.criteria, true)
		require.NoError(t, err)
		assert.Len(t, pruebas, caso.esperado, "criteria %v", caso.criteria)
	}
}

func TestFindByCriteriaIcontains(t *testing.T) {
	db := testDB(t)
	repo := NewAtletaRepository(db)

	nuevoAtleta(t, db, "500")
	otro := &models.Atleta{
		NombreAtleta:    "María",
		ApellidoAtleta:  "Gómez",
		DNI:             "501",
		FechaNacimiento: models.NewFecha(time.Now().AddDate(-11, 0, 0)),
		Sexo:            "F",
		Estado:          true,
	}
	require.NoError(t, repo.Create(otro))

	atletas, err := repo.FindByCriteria(map[string]interface{}{
		"nombre_atleta__icontains": "jua",
	}, true)
	require.NoError(t, err)
	require.Len(t, atletas, 1)
	assert.Equal(t, "Juan", atletas[0].NombreAtleta)
}

func TestUpdateIgnoraCamposDesconocidosYRecalcula(t *testing.T) {
	db := testDB(t)
	repo := NewAtletaRepository(db)
	atleta := nuevoAtleta(t, db, "600")

	nacimiento := models.NewFecha(time.Now().AddDate(-15, 0, 0))
	actualizado, err := repo.Update(atleta.ID, map[string]interface{}{
		"nombre_atleta":    "Pedro",
		"fecha_nacimiento": nacimiento,
		"id":               uint(777), // la clave primaria nunca se toca
		"inexistente":      "valor",   // las claves desconocidas se ignoran
	})
	require.NoError(t, err)
	require.NotNil(t, actualizado)

	assert.Equal(t, atleta.ID, actualizado.ID)
	assert.Equal(t, "Pedro", actualizado.NombreAtleta)
	assert.Equal(t, 15, actualizado.Edad, "la edad se recalcula al guardar")
}

func TestUpdateAusente(t *testing.T) {
	repo := NewAtletaRepository(testDB(t))

	atleta, err := repo.Update(999, map[string]interface{}{"nombre_atleta": "X"})
	require.NoError(t, err)
	assert.Nil(t, atleta)
}

func TestPaginate(t *testing.T) {
	db := testDB(t)
	repo := NewAtletaRepository(db)
	for i := 0; i < 25; i++ {
		nuevoAtleta(t, db, fmt.Sprintf("p%02d", i))
	}

	pagina, err := repo.Paginate(2, 10, true, "id")
	require.NoError(t, err)
	assert.Len(t, pagina.Data, 10)
	assert.Equal(t, int64(25), pagina.TotalItems)
	assert.Equal(t, 3, pagina.TotalPages)
	assert.Equal(t, 2, pagina.CurrentPage)
	assert.True(t, pagina.HasNext)
	assert.True(t, pagina.HasPrevious)

	// Los valores fuera de rango se normalizan.
	pagina, err = repo.Paginate(0, 0, true, "id")
	require.NoError(t, err)
	assert.Equal(t, 1, pagina.CurrentPage)
	assert.Equal(t, DefaultPageSize, pagina.PageSize)
	assert.Len(t, pagina.Data, DefaultPageSize)
	assert.False(t, pagina.HasPrevious)

	// Pedir más allá del final no es un error.
	pagina, err = repo.Paginate(99, 10, true, "id")
	require.NoError(t, err)
	assert.Empty(t, pagina.Data)
	assert.Equal(t, int64(25), pagina.TotalItems)
	assert.False(t, pagina.HasNext)
}

func TestPaginateConcatenaSinPerdida(t *testing.T) {
	db := testDB(t)
	repo := NewAtletaRepository(db)
	for i := 0; i < 12; i++ {
		nuevoAtleta(t, db, fmt.Sprintf("c%02d", i))
	}

	vistos := map[uint]bool{}
	for page := 1; page <= 3; page++ {
		pagina, err := repo.Paginate(page, 5, true, "id")
		require.NoError(t, err)
		for _, a := range pagina.Data {
			assert.False(t, vistos[a.ID], "id repetido entre páginas")
			vistos[a.ID] = true
		}
	}
	assert.Len(t, vistos, 12)
}

func TestInscripcionHabilitarDeshabilitar(t *testing.T) {
	db := testDB(t)
	atleta := nuevoAtleta(t, db, "700")
	repo := NewInscripcionRepository(db)

	ins := &models.Inscripcion{
		AtletaID:         atleta.ID,
		FechaInscripcion: models.Hoy(),
		TipoInscripcion:  models.InscripcionNueva,
	}
	require.NoError(t, repo.Create(ins))

	ok, err := repo.Habilitar(ins.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	guardada, err := repo.FindByID(ins.ID)
	require.NoError(t, err)
	assert.True(t, guardada.Habilitada)

	ok, err = repo.Deshabilitar(ins.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Habilitar(999)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAtletaSearch(t *testing.T) {
	db := testDB(t)
	repo := NewAtletaRepository(db)
	atleta := nuevoAtleta(t, db, "800")

	grupo := &models.GrupoAtleta{Nombre: "Sub-12", RangoEdadMinima: 10, RangoEdadMaxima: 12, Categoria: "Infantil", Estado: true}
	require.NoError(t, db.Create(grupo).Error)
	require.NoError(t, repo.AsignarGrupo(atleta.ID, &grupo.ID))

	edadMin := 10
	resultados, err := repo.Search(BusquedaAtletas{
		Nombre:  "  juan ", // los espacios se recortan
		GrupoID: &grupo.ID,
		Sexo:    "M",
		EdadMin: &edadMin,
	})
	require.NoError(t, err)
	require.Len(t, resultados, 1)
	assert.Equal(t, atleta.ID, resultados[0].ID)

	// Quitar el grupo deja la referencia en NULL.
	require.NoError(t, repo.AsignarGrupo(atleta.ID, nil))
	sinGrupo, err := repo.FindSinGrupo()
	require.NoError(t, err)
	assert.Len(t, sinGrupo, 1)
}
