package services

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dfmorales/basketball-api/internal/apperr"
	"github.com/dfmorales/basketball-api/internal/models"
	"github.com/dfmorales/basketball-api/internal/repository"
)

type entorno struct {
	db              *gorm.DB
	atletas         *AtletaService
	grupos          *GrupoService
	inscripciones   *InscripcionService
	antropometricas *PruebaAntropometricaService
	fisicas         *PruebaFisicaService
	entrenadores    *EntrenadorService
	estudiantes     *EstudianteService
}

func nuevoEntorno(t *testing.T) *entorno {
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

	log := logrus.New()
	log.SetOutput(io.Discard)
	validate := NewValidator()

	atletaRepo := repository.NewAtletaRepository(db)
	grupoRepo := repository.NewGrupoRepository(db)
	inscripcionRepo := repository.NewInscripcionRepository(db)
	antropometricaRepo := repository.NewPruebaAntropometricaRepository(db)
	fisicaRepo := repository.NewPruebaFisicaRepository(db)
	entrenadorRepo := repository.NewEntrenadorRepository(db)
	estudianteRepo := repository.NewEstudianteRepository(db)
	usuarioRepo := repository.NewUsuarioRepository(db)

	return &entorno{
		db:              db,
		atletas:         NewAtletaService(atletaRepo, grupoRepo, validate, log),
		grupos:          NewGrupoService(grupoRepo, atletaRepo, validate, log),
		inscripciones:   NewInscripcionService(inscripcionRepo, atletaRepo, validate, log),
		antropometricas: NewPruebaAntropometricaService(antropometricaRepo, atletaRepo, grupoRepo, validate, log),
		fisicas:         NewPruebaFisicaService(fisicaRepo, atletaRepo, validate, log),
		entrenadores:    NewEntrenadorService(entrenadorRepo, usuarioRepo, grupoRepo, validate, log),
		estudiantes:     NewEstudianteService(estudianteRepo, usuarioRepo, validate, log),
	}
}

func (e *entorno) crearUsuario(t *testing.T, nombre, apellido, dni string) *models.Usuario {
	t.Helper()
	usuario := &models.Usuario{
		Nombre:   nombre,
		Apellido: apellido,
		Email:    dni + "@club.ec",
		Clave:    "x",
		DNI:      dni,
		Rol:      models.RolEntrenador,
		Estado:   true,
	}
	require.NoError(t, e.db.Create(usuario).Error)
	return usuario
}

func (e *entorno) crearAtleta(t *testing.T, dni string, edadAnios int) *models.Atleta {
	t.Helper()
	nacimiento := time.Now().AddDate(-edadAnios, 0, -30).Format("2006-01-02")
	atleta, err := e.atletas.Crear(CrearAtletaInput{
		NombreAtleta:    "Juan",
		ApellidoAtleta:  "Pérez",
		DNI:             dni,
		FechaNacimiento: nacimiento,
		Sexo:            "M",
	})
	require.NoError(t, err)
	return atleta
}

func TestCrearAtletaDerivaEdad(t *testing.T) {
	e := nuevoEntorno(t)
	atleta := e.crearAtleta(t, "100", 12)

	assert.Equal(t, 12, atleta.Edad)
	assert.True(t, atleta.Estado)
}

func TestCrearAtletaValidacion(t *testing.T) {
	e := nuevoEntorno(t)

	_, err := e.atletas.Crear(CrearAtletaInput{Sexo: "M"})
	require.Error(t, err)

	ae := apperr.As(err)
	assert.Equal(t, apperr.KindValidation, ae.Kind)
	// Los mensajes por campo usan el vocabulario del wire (tags json).
	assert.Equal(t, "Este campo es obligatorio", ae.Fields["nombre_atleta"])
	assert.Equal(t, "Este campo es obligatorio", ae.Fields["dni"])
	assert.Equal(t, "Este campo es obligatorio", ae.Fields["fecha_nacimiento"])
}

func TestCrearAtletaFechaInvalida(t *testing.T) {
	e := nuevoEntorno(t)

	_, err := e.atletas.Crear(CrearAtletaInput{
		NombreAtleta:    "Juan",
		ApellidoAtleta:  "Pérez",
		DNI:             "100",
		FechaNacimiento: "15/06/2012",
		Sexo:            "M",
	})
	require.Error(t, err)

	ae := apperr.As(err)
	assert.Equal(t, apperr.KindValidation, ae.Kind)
	assert.Contains(t, ae.Fields["fecha_nacimiento"], "YYYY-MM-DD")
}

func TestCrearAtletaDNIDuplicado(t *testing.T) {
	e := nuevoEntorno(t)
	e.crearAtleta(t, "200", 12)

	nacimiento := time.Now().AddDate(-11, 0, 0).Format("2006-01-02")
	_, err := e.atletas.Crear(CrearAtletaInput{
		NombreAtleta:    "Otro",
		ApellidoAtleta:  "Atleta",
		DNI:             "200",
		FechaNacimiento: nacimiento,
		Sexo:            "F",
	})
	require.Error(t, err)

	ae := apperr.As(err)
	assert.Equal(t, apperr.KindConflict, ae.Kind)
	assert.Equal(t, "Ya existe un atleta con el DNI 200", ae.Message)
}

func TestCrearAtletaFueraDelRangoDelGrupo(t *testing.T) {
	e := nuevoEntorno(t)
	grupo, err := e.grupos.Crear(CrearGrupoInput{
		Nombre: "Sub-12", RangoEdadMinima: 10, RangoEdadMaxima: 12, Categoria: "Infantil",
	})
	require.NoError(t, err)

	nacimiento := time.Now().AddDate(-20, 0, 0).Format("2006-01-02")
	_, err = e.atletas.Crear(CrearAtletaInput{
		NombreAtleta:    "Mayor",
		ApellidoAtleta:  "DeEdad",
		DNI:             "300",
		FechaNacimiento: nacimiento,
		Sexo:            "M",
		GrupoID:         &grupo.ID,
	})
	require.Error(t, err)

	ae := apperr.As(err)
	assert.Equal(t, apperr.KindConflict, ae.Kind)
	assert.Equal(t, "El atleta no cumple el rango de edad del grupo (10-12 años)", ae.Message)
}

func TestAgregarAtletaAlGrupoConRangoDeEdad(t *testing.T) {
	e := nuevoEntorno(t)
	grupo, err := e.grupos.Crear(CrearGrupoInput{
		Nombre: "Sub-12", RangoEdadMinima: 10, RangoEdadMaxima: 12, Categoria: "Infantil",
	})
	require.NoError(t, err)

	dentro := e.crearAtleta(t, "400", 11)
	fuera := e.crearAtleta(t, "401", 20)

	asignado, err := e.grupos.AgregarAtleta(grupo.ID, dentro.ID)
	require.NoError(t, err)
	require.NotNil(t, asignado.GrupoID)
	assert.Equal(t, grupo.ID, *asignado.GrupoID)

	_, err = e.grupos.AgregarAtleta(grupo.ID, fuera.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))

	// Remover deja la referencia en NULL.
	require.NoError(t, e.grupos.RemoverAtleta(dentro.ID))
	sinGrupo, err := e.atletas.SinGrupo()
	require.NoError(t, err)
	assert.Len(t, sinGrupo, 2)
}

func TestAgregarAtletaEliminadoDuranteAsignacion(t *testing.T) {
	e := nuevoEntorno(t)
	grupo, err := e.grupos.Crear(CrearGrupoInput{
		Nombre: "Sub-12", RangoEdadMinima: 10, RangoEdadMaxima: 12, Categoria: "Infantil",
	})
	require.NoError(t, err)
	atleta := e.crearAtleta(t, "950", 11)

	// Simula un borrado concurrente: la fila del atleta desaparece en la misma
	// transacción que escribe la asignación, antes de la relectura.
	require.NoError(t, e.db.Callback().Update().After("gorm:update").Register("borrar_atleta", func(tx *gorm.DB) {
		if tx.Statement.Table == "atleta" {
			_, _ = tx.Statement.ConnPool.ExecContext(tx.Statement.Context,
				"DELETE FROM atleta WHERE id = ?", atleta.ID)
		}
	}))

	_, err = e.grupos.AgregarAtleta(grupo.ID, atleta.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestListarEntrenadoresFiltraPorNombre(t *testing.T) {
	e := nuevoEntorno(t)
	juan := e.crearUsuario(t, "Juan", "Pérez", "e1")
	maria := e.crearUsuario(t, "María", "Gómez", "e2")

	_, err := e.entrenadores.Crear(CrearEntrenadorInput{
		UsuarioID: juan.ID, Especialidad: "Tiro", ClubAsignado: "Centro",
	})
	require.NoError(t, err)
	_, err = e.entrenadores.Crear(CrearEntrenadorInput{
		UsuarioID: maria.ID, Especialidad: "Defensa", ClubAsignado: "Centro",
	})
	require.NoError(t, err)

	lista, err := e.entrenadores.Listar(FiltrosEntrenador{Nombre: "jua"})
	require.NoError(t, err)
	require.Len(t, lista, 1)
	assert.Equal(t, juan.ID, lista[0].UsuarioID)

	// Los filtros suministrados se combinan (AND).
	lista, err = e.entrenadores.Listar(FiltrosEntrenador{Nombre: "a", Especialidad: "defensa"})
	require.NoError(t, err)
	require.Len(t, lista, 1)
	assert.Equal(t, maria.ID, lista[0].UsuarioID)

	lista, err = e.entrenadores.Listar(FiltrosEntrenador{Nombre: "jua", Club: "Otro"})
	require.NoError(t, err)
	assert.Empty(t, lista)
}

func TestListarEstudiantesCombinaFiltros(t *testing.T) {
	e := nuevoEntorno(t)
	ana := e.crearUsuario(t, "Ana", "Ruiz", "s1")
	luis := e.crearUsuario(t, "Luis", "Mora", "s2")

	_, err := e.estudiantes.Crear(CrearEstudianteInput{
		UsuarioID: ana.ID, Carrera: "Educación Física", Semestre: "5",
	})
	require.NoError(t, err)
	_, err = e.estudiantes.Crear(CrearEstudianteInput{
		UsuarioID: luis.ID, Carrera: "Educación Física", Semestre: "7",
	})
	require.NoError(t, err)

	lista, err := e.estudiantes.Listar(FiltrosEstudiante{Nombre: "lui"})
	require.NoError(t, err)
	require.Len(t, lista, 1)
	assert.Equal(t, luis.ID, lista[0].UsuarioID)

	// carrera, semestre y nombre se aplican juntos.
	lista, err = e.estudiantes.Listar(FiltrosEstudiante{Carrera: "Física", Semestre: "5", Nombre: "an"})
	require.NoError(t, err)
	require.Len(t, lista, 1)
	assert.Equal(t, ana.ID, lista[0].UsuarioID)

	lista, err = e.estudiantes.Listar(FiltrosEstudiante{Carrera: "Física", Semestre: "5", Nombre: "lui"})
	require.NoError(t, err)
	assert.Empty(t, lista)

	// Sin filtros solo cuentan los estudiantes con usuario activo.
	require.NoError(t, e.db.Model(&models.Usuario{}).Where("id = ?", ana.ID).Update("estado", false).Error)
	lista, err = e.estudiantes.Listar(FiltrosEstudiante{})
	require.NoError(t, err)
	require.Len(t, lista, 1)
	assert.Equal(t, luis.ID, lista[0].UsuarioID)
}

func TestActualizarGrupoRangoIncoherente(t *testing.T) {
	e := nuevoEntorno(t)
	grupo, err := e.grupos.Crear(CrearGrupoInput{
		Nombre: "Sub-12", RangoEdadMinima: 10, RangoEdadMaxima: 12, Categoria: "Infantil",
	})
	require.NoError(t, err)

	// Subir el mínimo por encima del máximo vigente se rechaza aunque el
	// máximo no venga en la petición.
	minimo := 15
	_, err = e.grupos.Actualizar(grupo.ID, ActualizarGrupoInput{RangoEdadMinima: &minimo})
	require.Error(t, err)

	ae := apperr.As(err)
	assert.Equal(t, apperr.KindValidation, ae.Kind)
	assert.Equal(t, "Debe ser menor o igual al rango máximo", ae.Fields["rango_edad_minima"])
}

func TestCrearInscripcionAplicaDefaults(t *testing.T) {
	e := nuevoEntorno(t)
	atleta := e.crearAtleta(t, "500", 12)

	ins, err := e.inscripciones.Crear(CrearInscripcionInput{AtletaID: atleta.ID})
	require.NoError(t, err)

	assert.Equal(t, models.InscripcionNueva, ins.TipoInscripcion)
	assert.Equal(t, models.Hoy().String(), ins.FechaInscripcion.String())
	assert.False(t, ins.Habilitada, "toda inscripción nace pendiente de aprobación")
}

func TestCrearInscripcionAtletaInexistente(t *testing.T) {
	e := nuevoEntorno(t)

	_, err := e.inscripciones.Crear(CrearInscripcionInput{AtletaID: 999})
	require.Error(t, err)

	ae := apperr.As(err)
	assert.Equal(t, apperr.KindNotFound, ae.Kind)
	assert.Equal(t, "Atleta", ae.Resource)
}

func TestHabilitarInscripcion(t *testing.T) {
	e := nuevoEntorno(t)
	atleta := e.crearAtleta(t, "600", 12)

	ins, err := e.inscripciones.Crear(CrearInscripcionInput{AtletaID: atleta.ID})
	require.NoError(t, err)

	habilitada, err := e.inscripciones.Habilitar(ins.ID)
	require.NoError(t, err)
	assert.True(t, habilitada.Habilitada)

	deshabilitada, err := e.inscripciones.Deshabilitar(ins.ID)
	require.NoError(t, err)
	assert.False(t, deshabilitada.Habilitada)
}

func TestCompararPruebasFisicasDeDistintoTipo(t *testing.T) {
	e := nuevoEntorno(t)
	atleta := e.crearAtleta(t, "700", 12)

	p1, err := e.fisicas.Crear(CrearPruebaFisicaInput{
		AtletaID: atleta.ID, TipoPrueba: "VELOCIDAD", Resultado: 8.5, UnidadMedida: "seg",
	})
	require.NoError(t, err)
	p2, err := e.fisicas.Crear(CrearPruebaFisicaInput{
		AtletaID: atleta.ID, TipoPrueba: "FUERZA", Resultado: 30, UnidadMedida: "kg",
	})
	require.NoError(t, err)

	_, err = e.fisicas.Comparar(p1.ID, p2.ID)
	require.Error(t, err)

	ae := apperr.As(err)
	assert.Equal(t, apperr.KindConflict, ae.Kind)
	assert.Equal(t, "No se pueden comparar pruebas de diferente tipo", ae.Message)
}

func TestCompararPruebasFisicas(t *testing.T) {
	e := nuevoEntorno(t)
	atleta := e.crearAtleta(t, "800", 12)

	p1, err := e.fisicas.Crear(CrearPruebaFisicaInput{
		AtletaID: atleta.ID, TipoPrueba: "VELOCIDAD", Resultado: 10, UnidadMedida: "seg",
	})
	require.NoError(t, err)
	p2, err := e.fisicas.Crear(CrearPruebaFisicaInput{
		AtletaID: atleta.ID, TipoPrueba: "VELOCIDAD", Resultado: 8, UnidadMedida: "seg",
	})
	require.NoError(t, err)

	comparacion, err := e.fisicas.Comparar(p1.ID, p2.ID)
	require.NoError(t, err)
	require.Len(t, comparacion.Campos, 1)

	campo := comparacion.Campos[0]
	assert.Equal(t, "resultado", campo.Campo)
	assert.Equal(t, -2.0, campo.Diferencia)
	assert.Equal(t, -20.0, campo.CambioPorcentual)

	_, err = e.fisicas.Comparar(p1.ID, 999)
	require.Error(t, err)
	assert.Equal(t, "Una o ambas pruebas no existen", apperr.As(err).Message)
}

func TestCompararPruebasAntropometricas(t *testing.T) {
	e := nuevoEntorno(t)
	atleta := e.crearAtleta(t, "900", 12)

	sentado1 := 80.0
	p1, err := e.antropometricas.Crear(CrearPruebaAntropometricaInput{
		AtletaID: atleta.ID, Estatura: 150, Peso: 45, AlturaSentado: &sentado1,
	})
	require.NoError(t, err)
	p2, err := e.antropometricas.Crear(CrearPruebaAntropometricaInput{
		AtletaID: atleta.ID, Estatura: 155, Peso: 48,
	})
	require.NoError(t, err)

	comparacion, err := e.antropometricas.Comparar(p1.ID, p2.ID)
	require.NoError(t, err)

	// Estatura, peso e IMC siempre; altura_sentado solo está en la primera
	// prueba, así que no se compara.
	nombres := make([]string, 0, len(comparacion.Campos))
	for _, campo := range comparacion.Campos {
		nombres = append(nombres, campo.Campo)
	}
	assert.Equal(t, []string{"estatura", "peso", "indice_masa_corporal"}, nombres)

	estatura := comparacion.Campos[0]
	assert.Equal(t, 5.0, estatura.Diferencia)
	assert.Equal(t, 3.33, estatura.CambioPorcentual)
}

func TestCambioPorcentualConBaseCero(t *testing.T) {
	assert.Equal(t, 0.0, cambioPorcentual(0, 50), "base cero no divide")
	assert.Equal(t, 50.0, cambioPorcentual(10, 15))
	assert.Equal(t, -50.0, cambioPorcentual(10, 5))
}

func TestUltimaPruebaAntropometricaSinPruebas(t *testing.T) {
	e := nuevoEntorno(t)
	atleta := e.crearAtleta(t, "910", 12)

	_, err := e.antropometricas.UltimaPorAtleta(atleta.ID)
	require.Error(t, err)

	ae := apperr.As(err)
	assert.Equal(t, apperr.KindNotFound, ae.Kind)
	assert.Equal(t, "No se encontraron pruebas para este atleta", ae.Message)
}

func TestPromedioPorTipo(t *testing.T) {
	e := nuevoEntorno(t)
	atleta := e.crearAtleta(t, "920", 12)

	for _, resultado := range []float64{8, 10} {
		_, err := e.fisicas.Crear(CrearPruebaFisicaInput{
			AtletaID: atleta.ID, TipoPrueba: "VELOCIDAD", Resultado: resultado, UnidadMedida: "seg",
		})
		require.NoError(t, err)
	}

	promedio, err := e.fisicas.PromedioPorTipo("VELOCIDAD")
	require.NoError(t, err)
	assert.Equal(t, 9.0, promedio.Promedio)
	assert.Equal(t, int64(2), promedio.TotalPruebas)
	assert.Equal(t, "Velocidad", promedio.Etiqueta)

	_, err = e.fisicas.PromedioPorTipo("SALTO")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}
