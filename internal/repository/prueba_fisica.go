package repository

import (
	"gorm.io/gorm"

	"github.com/dfmorales/basketball-api/internal/models"
)

// PruebaFisicaRepository adds performance-test lookups and aggregates.
type PruebaFisicaRepository struct {
	*Repository[models.PruebaFisica]
}

func NewPruebaFisicaRepository(db *gorm.DB) *PruebaFisicaRepository {
	return &PruebaFisicaRepository{NewRepository[models.PruebaFisica](db)}
}

// FindByAtleta returns the athlete's active tests, newest first.
func (r *PruebaFisicaRepository) FindByAtleta(atletaID uint) ([]models.PruebaFisica, error) {
	var entities []models.PruebaFisica
	err := r.DB().Where("atleta_id = ? AND estado = ?", atletaID, true).
		Order("fecha_registro DESC, id DESC").
		Find(&entities).Error
	return entities, err
}

// FindByTipo returns the active tests of the given type across all athletes.
func (r *PruebaFisicaRepository) FindByTipo(tipo models.TipoPrueba) ([]models.PruebaFisica, error) {
	return r.FindByFilters(map[string]interface{}{"tipo_prueba": tipo}, true)
}

// FindByAtletaYTipo returns the athlete's active tests of one type, newest first.
func (r *PruebaFisicaRepository) FindByAtletaYTipo(atletaID uint, tipo models.TipoPrueba) ([]models.PruebaFisica, error) {
	var entities []models.PruebaFisica
	err := r.DB().Where("atleta_id = ? AND tipo_prueba = ? AND estado = ?", atletaID, tipo, true).
		Order("fecha_registro DESC, id DESC").
		Find(&entities).Error
	return entities, err
}

// FindUltimaByAtletaYTipo returns the athlete's most recent active test of
// one type, or (nil, nil) when they have none.
func (r *PruebaFisicaRepository) FindUltimaByAtletaYTipo(atletaID uint, tipo models.TipoPrueba) (*models.PruebaFisica, error) {
	var entity models.PruebaFisica
	err := r.DB().Where("atleta_id = ? AND tipo_prueba = ? AND estado = ?", atletaID, tipo, true).
		Order("fecha_registro DESC, id DESC").
		First(&entity).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// PromedioByTipo computes the average result of the active tests of one type
// in the database. Returns (0, 0, nil) when no tests of that type exist.
func (r *PruebaFisicaRepository) PromedioByTipo(tipo models.TipoPrueba) (promedio float64, total int64, err error) {
	row := struct {
		Promedio *float64
		Total    int64
	}{}
	err = r.DB().Model(&models.PruebaFisica{}).
		Select("AVG(resultado) AS promedio, COUNT(id) AS total").
		Where("tipo_prueba = ? AND estado = ?", tipo, true).
		Scan(&row).Error
	if err != nil {
		return 0, 0, err
	}
	if row.Promedio != nil {
		promedio = *row.Promedio
	}
	return promedio, row.Total, nil
}

// EstadisticaTipoPrueba summarizes an athlete's history for one test type.
// Mejor is the maximum result: whether higher is actually better depends on
// the unit, so callers interpret it per type.
type EstadisticaTipoPrueba struct {
	TipoPrueba     models.TipoPrueba    `json:"tipo_prueba"`
	Etiqueta       string               `json:"tipo_prueba_display"`
	TotalPruebas   int                  `json:"total_pruebas"`
	UltimaPrueba   *models.PruebaFisica `json:"ultima_prueba"`
	MejorResultado float64              `json:"mejor_resultado"`
	Promedio       float64              `json:"promedio"`
}

// EstadisticasByAtleta computes the athlete's per-type summaries in process,
// keeping only the types they actually have tests for.
func (r *PruebaFisicaRepository) EstadisticasByAtleta(atletaID uint) ([]EstadisticaTipoPrueba, error) {
	pruebas, err := r.FindByAtleta(atletaID)
	if err != nil {
		return nil, err
	}

	porTipo := map[models.TipoPrueba][]models.PruebaFisica{}
	for _, p := range pruebas {
		porTipo[p.TipoPrueba] = append(porTipo[p.TipoPrueba], p)
	}

	stats := make([]EstadisticaTipoPrueba, 0, len(porTipo))
	for _, tipo := range models.TiposPrueba() {
		grupo, ok := porTipo[tipo]
		if !ok {
			continue
		}
		// FindByAtleta orders newest first, so grupo[0] is the latest.
		ultima := grupo[0]
		var suma, mejor float64
		for i, p := range grupo {
			suma += p.Resultado
			if i == 0 || p.Resultado > mejor {
				mejor = p.Resultado
			}
		}
		stats = append(stats, EstadisticaTipoPrueba{
			TipoPrueba:     tipo,
			Etiqueta:       models.EtiquetaTipoPrueba(tipo),
			TotalPruebas:   len(grupo),
			UltimaPrueba:   &ultima,
			MejorResultado: mejor,
			Promedio:       redondear2(suma / float64(len(grupo))),
		})
	}
	return stats, nil
}
