// Package models defines the persisted records of the basketball program and
// their invariants. GORM maps each struct to a table; the explicit column tags
// keep the schema identical to the one the transport contract was written
// against (Spanish column names, integer surrogate keys, DATE columns).
//
// The domain:
//   - Atletas optionally belong to a GrupoAtleta (an age-banded training group)
//   - Inscripciones are an athlete's registration periods, gated by an
//     approval flag
//   - PruebaAntropometrica and PruebaFisica record the two kinds of physical
//     measurement tests taken by an athlete
//   - Entrenadores and EstudiantesVinculacion extend the Usuario stub owned by
//     the identity team; Usuario is included here only as a relation target
//
// Derived fields (edad, indice_masa_corporal, indice_cornico) are never
// accepted from callers: each owning entity recomputes them in Recalcular,
// which the repository write path invokes immediately before persisting.
package models

import (
	"math"
	"time"
)

// --- Enums ---
// Typed string constants; the raw values are what is stored and serialized.

// TipoInscripcion classifies how an athlete entered the program.
type TipoInscripcion string

const (
	InscripcionNueva         TipoInscripcion = "NUEVO"
	InscripcionRenovacion    TipoInscripcion = "RENOVACION"
	InscripcionTransferencia TipoInscripcion = "TRANSFERENCIA"
)

// TiposInscripcion lists the accepted enrollment types.
func TiposInscripcion() []TipoInscripcion {
	return []TipoInscripcion{InscripcionNueva, InscripcionRenovacion, InscripcionTransferencia}
}

// TipoInscripcionValido reports whether s is an accepted enrollment type.
func TipoInscripcionValido(s string) bool {
	for _, t := range TiposInscripcion() {
		if string(t) == s {
			return true
		}
	}
	return false
}

// TipoPrueba classifies a physical test.
type TipoPrueba string

const (
	PruebaResistencia  TipoPrueba = "RESISTENCIA"
	PruebaVelocidad    TipoPrueba = "VELOCIDAD"
	PruebaFuerza       TipoPrueba = "FUERZA"
	PruebaFlexibilidad TipoPrueba = "FLEXIBILIDAD"
	PruebaAgilidad     TipoPrueba = "AGILIDAD"
	PruebaCoordinacion TipoPrueba = "COORDINACION"
)

// TiposPrueba lists the accepted physical test types.
func TiposPrueba() []TipoPrueba {
	return []TipoPrueba{
		PruebaResistencia, PruebaVelocidad, PruebaFuerza,
		PruebaFlexibilidad, PruebaAgilidad, PruebaCoordinacion,
	}
}

// TipoPruebaValido reports whether s is an accepted physical test type.
func TipoPruebaValido(s string) bool {
	for _, t := range TiposPrueba() {
		if string(t) == s {
			return true
		}
	}
	return false
}

// EtiquetaTipoPrueba returns the human-readable label for a test type.
func EtiquetaTipoPrueba(t TipoPrueba) string {
	switch t {
	case PruebaResistencia:
		return "Resistencia"
	case PruebaVelocidad:
		return "Velocidad"
	case PruebaFuerza:
		return "Fuerza"
	case PruebaFlexibilidad:
		return "Flexibilidad"
	case PruebaAgilidad:
		return "Agilidad"
	case PruebaCoordinacion:
		return "Coordinación"
	default:
		return string(t)
	}
}

// RolUsuario is the role tag on the external Usuario stub.
type RolUsuario string

const (
	RolAdministrador         RolUsuario = "ADMINISTRADOR"
	RolEntrenador            RolUsuario = "ENTRENADOR"
	RolEstudianteVinculacion RolUsuario = "ESTUDIANTE_VINCULACION"
)

// --- Capability interfaces ---

// SoftDeletable is implemented by models whose delete is a flag flip instead
// of a row removal. The soft-delete column is explicit per-entity
// configuration: Inscripcion overrides it with "habilitada", and Entrenador /
// EstudianteVinculacion simply don't implement the interface, so they are
// only ever hard-deleted.
type SoftDeletable interface {
	SoftDeleteColumn() string
}

// Recalculable is implemented by models carrying derived fields. The
// repository calls Recalcular right before every insert and save, so a caller
// that supplies edad or the indices directly is silently overridden.
type Recalculable interface {
	Recalcular()
}

// --- Derived-field computations ---
// Pure functions so the formulas are testable without touching storage.

// CalcularEdad returns the age in whole years at hoy for someone born on
// nacimiento: the year difference, minus one if the birthday hasn't been
// reached yet this year.
func CalcularEdad(nacimiento, hoy time.Time) int {
	edad := hoy.Year() - nacimiento.Year()
	if hoy.Month() < nacimiento.Month() ||
		(hoy.Month() == nacimiento.Month() && hoy.Day() < nacimiento.Day()) {
		edad--
	}
	return edad
}

// CalcularIMC computes the body-mass index from weight in kg and height in cm,
// rounded to 2 decimals. Returns 0 when either input is not positive.
func CalcularIMC(peso, estaturaCM float64) float64 {
	if peso <= 0 || estaturaCM <= 0 {
		return 0
	}
	metros := estaturaCM / 100
	return redondear2(peso / (metros * metros))
}

// CalcularIndiceCornico computes the cornic index (seated height over standing
// height, as a percentage), rounded to 2 decimals. Returns 0 when either input
// is not positive.
func CalcularIndiceCornico(alturaSentado, estatura float64) float64 {
	if alturaSentado <= 0 || estatura <= 0 {
		return 0
	}
	return redondear2(alturaSentado / estatura * 100)
}

func redondear2(v float64) float64 {
	return math.Round(v*100) / 100
}

// --- Entities ---

// Usuario is the system user stub. The real model is owned by the identity
// team; it exists here only so Entrenador and EstudianteVinculacion have a
// relation target. No HTTP resource is exposed for it.
type Usuario struct {
	ID            uint       `gorm:"column:id;primaryKey" json:"id"`
	Nombre        string     `gorm:"column:nombre;size:100;not null" json:"nombre"`
	Apellido      string     `gorm:"column:apellido;size:100;not null" json:"apellido"`
	Email         string     `gorm:"column:email;size:254;uniqueIndex;not null" json:"email"`
	Clave         string     `gorm:"column:clave;size:255;not null" json:"-"`
	FotoPerfil    *string    `gorm:"column:foto_perfil;size:255" json:"foto_perfil"`
	DNI           string     `gorm:"column:dni;size:20;uniqueIndex;not null" json:"dni"`
	Rol           RolUsuario `gorm:"column:rol;size:50;not null" json:"rol"`
	Estado        bool       `gorm:"column:estado;not null;default:true" json:"estado"`
	FechaRegistro Fecha      `gorm:"column:fecha_registro" json:"fecha_registro"`
}

func (Usuario) TableName() string { return "usuario" }

func (Usuario) SoftDeleteColumn() string { return "estado" }

// EsAdministrador reports whether the user holds the administrator role.
func (u *Usuario) EsAdministrador() bool { return u.Rol == RolAdministrador }

// Recalcular stamps the registration date on first save.
func (u *Usuario) Recalcular() {
	if u.FechaRegistro.IsZero() {
		u.FechaRegistro = Hoy()
	}
}

// GrupoAtleta is an age-banded training group. rango_edad_minima ≤
// rango_edad_maxima is expected but historically unenforced; the service
// layer validates it on create.
type GrupoAtleta struct {
	ID              uint   `gorm:"column:id;primaryKey" json:"id"`
	Nombre          string `gorm:"column:nombre;size:100;not null" json:"nombre"`
	RangoEdadMinima int    `gorm:"column:rango_edad_minima;not null" json:"rango_edad_minima"`
	RangoEdadMaxima int    `gorm:"column:rango_edad_maxima;not null" json:"rango_edad_maxima"`
	Categoria       string `gorm:"column:categoria;size:100;not null" json:"categoria"`
	FechaCreacion   Fecha  `gorm:"column:fecha_creacion" json:"fecha_creacion"`
	Estado          bool   `gorm:"column:estado;not null;default:true" json:"estado"`
}

func (GrupoAtleta) TableName() string { return "grupo_atleta" }

func (GrupoAtleta) SoftDeleteColumn() string { return "estado" }

// AceptaEdad reports whether the group's age band contains edad (inclusive).
func (g *GrupoAtleta) AceptaEdad(edad int) bool {
	return g.RangoEdadMinima <= edad && edad <= g.RangoEdadMaxima
}

func (g *GrupoAtleta) Recalcular() {
	if g.FechaCreacion.IsZero() {
		g.FechaCreacion = Hoy()
	}
}

// Entrenador is a coach: a one-to-one extension of Usuario plus the groups
// they are assigned to. Coaches have no soft-delete flag.
type Entrenador struct {
	ID           uint          `gorm:"column:id;primaryKey" json:"id"`
	UsuarioID    uint          `gorm:"column:usuario_id;uniqueIndex;not null" json:"usuario"`
	Usuario      *Usuario      `gorm:"foreignKey:UsuarioID;constraint:OnDelete:CASCADE" json:"-"`
	Especialidad string        `gorm:"column:especialidad;size:100;not null" json:"especialidad"`
	ClubAsignado string        `gorm:"column:club_asignado;size:100;not null" json:"club_asignado"`
	Grupos       []GrupoAtleta `gorm:"many2many:entrenador_grupos" json:"-"`
}

func (Entrenador) TableName() string { return "entrenador" }

// EstudianteVinculacion is a liaison student: a one-to-one extension of
// Usuario with their academic program and term. No soft-delete flag.
type EstudianteVinculacion struct {
	ID        uint     `gorm:"column:id;primaryKey" json:"id"`
	UsuarioID uint     `gorm:"column:usuario_id;uniqueIndex;not null" json:"usuario"`
	Usuario   *Usuario `gorm:"foreignKey:UsuarioID;constraint:OnDelete:CASCADE" json:"-"`
	Carrera   string   `gorm:"column:carrera;size:100;not null" json:"carrera"`
	Semestre  string   `gorm:"column:semestre;size:20;not null" json:"semestre"`
}

func (EstudianteVinculacion) TableName() string { return "estudiante_vinculacion" }

// Atleta is a program athlete. Edad is derived from FechaNacimiento on every
// save. Removing the group nulls the reference instead of cascading.
type Atleta struct {
	ID                    uint         `gorm:"column:id;primaryKey" json:"id"`
	NombreAtleta          string       `gorm:"column:nombre_atleta;size:100;not null" json:"nombre_atleta"`
	ApellidoAtleta        string       `gorm:"column:apellido_atleta;size:100;not null" json:"apellido_atleta"`
	DNI                   string       `gorm:"column:dni;size:20;uniqueIndex;not null" json:"dni"`
	FechaNacimiento       Fecha        `gorm:"column:fecha_nacimiento;not null" json:"fecha_nacimiento"`
	Edad                  int          `gorm:"column:edad;not null" json:"edad"`
	Sexo                  string       `gorm:"column:sexo;size:20;not null" json:"sexo"`
	Email                 *string      `gorm:"column:email;size:254" json:"email"`
	Telefono              *string      `gorm:"column:telefono;size:20" json:"telefono"`
	TipoSangre            *string      `gorm:"column:tipo_sangre;size:10" json:"tipo_sangre"`
	DatosRepresentante    *string      `gorm:"column:datos_representante;size:255" json:"datos_representante"`
	TelefonoRepresentante *string      `gorm:"column:telefono_representante;size:20" json:"telefono_representante"`
	GrupoID               *uint        `gorm:"column:grupo_id" json:"grupo"`
	Grupo                 *GrupoAtleta `gorm:"foreignKey:GrupoID;constraint:OnDelete:SET NULL" json:"-"`
	Estado                bool         `gorm:"column:estado;not null;default:true" json:"estado"`
}

func (Atleta) TableName() string { return "atleta" }

func (Atleta) SoftDeleteColumn() string { return "estado" }

// NombreCompleto is the display form used by the serialized atleta_nombre fields.
func (a *Atleta) NombreCompleto() string {
	return a.NombreAtleta + " " + a.ApellidoAtleta
}

// Recalcular derives Edad from FechaNacimiento. Caller-supplied ages are
// always overridden here.
func (a *Atleta) Recalcular() {
	if !a.FechaNacimiento.IsZero() {
		a.Edad = CalcularEdad(a.FechaNacimiento.Time, time.Now())
	}
}

// Inscripcion is an athlete's registration period. Habilitada doubles as the
// approval gate and the soft-delete flag: new enrollments start disabled and
// require explicit activation.
type Inscripcion struct {
	ID               uint            `gorm:"column:id;primaryKey" json:"id"`
	AtletaID         uint            `gorm:"column:atleta_id;not null" json:"atleta"`
	Atleta           *Atleta         `gorm:"foreignKey:AtletaID;constraint:OnDelete:CASCADE" json:"-"`
	FechaInscripcion Fecha           `gorm:"column:fecha_inscripcion;not null" json:"fecha_inscripcion"`
	TipoInscripcion  TipoInscripcion `gorm:"column:tipo_inscripcion;size:20;not null;default:'NUEVO'" json:"tipo_inscripcion"`
	FechaCreacion    Fecha           `gorm:"column:fecha_creacion" json:"fecha_creacion"`
	Habilitada       bool            `gorm:"column:habilitada;not null;default:false" json:"habilitada"`
}

func (Inscripcion) TableName() string { return "inscripcion" }

func (Inscripcion) SoftDeleteColumn() string { return "habilitada" }

// ValidarDocumentos is a stub: document validation is owned by another
// process and always passes here.
func (i *Inscripcion) ValidarDocumentos() bool { return true }

func (i *Inscripcion) Recalcular() {
	if i.FechaCreacion.IsZero() {
		i.FechaCreacion = Hoy()
	}
}

// PruebaAntropometrica is a body-measurement test. Estatura and Peso are in
// cm and kg; IndiceMasaCorporal and IndiceCornico are derived on every save.
type PruebaAntropometrica struct {
	ID                 uint     `gorm:"column:id;primaryKey" json:"id"`
	AtletaID           uint     `gorm:"column:atleta_id;not null" json:"atleta"`
	Atleta             *Atleta  `gorm:"foreignKey:AtletaID;constraint:OnDelete:CASCADE" json:"-"`
	FechaRegistro      Fecha    `gorm:"column:fecha_registro" json:"fecha_registro"`
	IndiceMasaCorporal *float64 `gorm:"column:indice_masa_corporal" json:"indice_masa_corporal"`
	Estatura           float64  `gorm:"column:estatura;not null" json:"estatura"`
	AlturaSentado      *float64 `gorm:"column:altura_sentado" json:"altura_sentado"`
	Envergadura        *float64 `gorm:"column:envergadura" json:"envergadura"`
	IndiceCornico      *float64 `gorm:"column:indice_cornico" json:"indice_cornico"`
	Peso               float64  `gorm:"column:peso;not null" json:"peso"`
	Observaciones      *string  `gorm:"column:observaciones" json:"observaciones"`
	Estado             bool     `gorm:"column:estado;not null;default:true" json:"estado"`
}

func (PruebaAntropometrica) TableName() string { return "prueba_antropometrica" }

func (PruebaAntropometrica) SoftDeleteColumn() string { return "estado" }

// ValidarDatos reports whether the measured values are usable.
func (p *PruebaAntropometrica) ValidarDatos() bool {
	return p.Estatura > 0 && p.Peso > 0
}

// Recalcular derives the BMI, and the cornic index when a seated height is
// present. Caller-supplied index values are always overridden.
func (p *PruebaAntropometrica) Recalcular() {
	if p.FechaRegistro.IsZero() {
		p.FechaRegistro = Hoy()
	}
	if p.Estatura > 0 && p.Peso > 0 {
		imc := CalcularIMC(p.Peso, p.Estatura)
		p.IndiceMasaCorporal = &imc
	}
	if p.AlturaSentado != nil && *p.AlturaSentado > 0 && p.Estatura > 0 {
		cornico := CalcularIndiceCornico(*p.AlturaSentado, p.Estatura)
		p.IndiceCornico = &cornico
	}
}

// PruebaFisica is a performance test: a typed measurement with its unit.
type PruebaFisica struct {
	ID            uint       `gorm:"column:id;primaryKey" json:"id"`
	AtletaID      uint       `gorm:"column:atleta_id;not null" json:"atleta"`
	Atleta        *Atleta    `gorm:"foreignKey:AtletaID;constraint:OnDelete:CASCADE" json:"-"`
	FechaRegistro Fecha      `gorm:"column:fecha_registro" json:"fecha_registro"`
	TipoPrueba    TipoPrueba `gorm:"column:tipo_prueba;size:20;not null" json:"tipo_prueba"`
	Resultado     float64    `gorm:"column:resultado;not null" json:"resultado"`
	UnidadMedida  string     `gorm:"column:unidad_medida;size:50;not null" json:"unidad_medida"`
	Observaciones *string    `gorm:"column:observaciones" json:"observaciones"`
	Estado        bool       `gorm:"column:estado;not null;default:true" json:"estado"`
}

func (PruebaFisica) TableName() string { return "prueba_fisica" }

func (PruebaFisica) SoftDeleteColumn() string { return "estado" }

// ValidarResultado reports whether the measured result is usable.
func (p *PruebaFisica) ValidarResultado() bool { return p.Resultado >= 0 }

func (p *PruebaFisica) Recalcular() {
	if p.FechaRegistro.IsZero() {
		p.FechaRegistro = Hoy()
	}
}
