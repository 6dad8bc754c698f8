package repository

import (
	"math"

	"gorm.io/gorm"

	"github.com/dfmorales/basketball-api/internal/models"
)

// redondear2 rounds to 2 decimals, the precision every aggregate is reported in.
func redondear2(v float64) float64 {
	return math.Round(v*100) / 100
}

// PruebaAntropometricaRepository adds measurement-test lookups and the
// aggregate queries behind the statistics endpoints.
type PruebaAntropometricaRepository struct {
	*Repository[models.PruebaAntropometrica]
}

func NewPruebaAntropometricaRepository(db *gorm.DB) *PruebaAntropometricaRepository {
	return &PruebaAntropometricaRepository{NewRepository[models.PruebaAntropometrica](db)}
}

// FindByAtleta returns the athlete's active tests, newest first.
func (r *PruebaAntropometricaRepository) FindByAtleta(atletaID uint) ([]models.PruebaAntropometrica, error) {
	var entities []models.PruebaAntropometrica
	err := r.DB().Where("atleta_id = ? AND estado = ?", atletaID, true).
		Order("fecha_registro DESC, id DESC").
		Find(&entities).Error
	return entities, err
}

// FindUltimaByAtleta returns the athlete's most recent active test, or
// (nil, nil) when they have none.
func (r *PruebaAntropometricaRepository) FindUltimaByAtleta(atletaID uint) (*models.PruebaAntropometrica, error) {
	var entity models.PruebaAntropometrica
	err := r.DB().Where("atleta_id = ? AND estado = ?", atletaID, true).
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

// PromedioIMCByGrupo computes the average BMI over the active tests of a
// group's active athletes, in the database. Returns (0, 0, nil) when the
// group has no tests.
func (r *PruebaAntropometricaRepository) PromedioIMCByGrupo(grupoID uint) (promedio float64, total int64, err error) {
	row := struct {
		Promedio *float64
		Total    int64
	}{}
	err = r.DB().Model(&models.PruebaAntropometrica{}).
		Select("AVG(prueba_antropometrica.indice_masa_corporal) AS promedio, COUNT(prueba_antropometrica.id) AS total").
		Joins("JOIN atleta ON atleta.id = prueba_antropometrica.atleta_id").
		Where("atleta.grupo_id = ? AND atleta.estado = ?", grupoID, true).
		Where("prueba_antropometrica.estado = ? AND prueba_antropometrica.indice_masa_corporal IS NOT NULL", true).
		Scan(&row).Error
	if err != nil {
		return 0, 0, err
	}
	if row.Promedio != nil {
		promedio = *row.Promedio
	}
	return promedio, row.Total, nil
}

// EstadisticasAntropometricas summarizes an athlete's measurement history.
type EstadisticasAntropometricas struct {
	TotalPruebas     int                          `json:"total_pruebas"`
	UltimaPrueba     *models.PruebaAntropometrica `json:"ultima_prueba"`
	PromedioIMC      float64                      `json:"promedio_imc"`
	PromedioPeso     float64                      `json:"promedio_peso"`
	PromedioEstatura float64                      `json:"promedio_estatura"`
}

// EstadisticasByAtleta computes the athlete's summary in process: total
// active tests, the latest one, and the mean BMI, weight and height.
func (r *PruebaAntropometricaRepository) EstadisticasByAtleta(atletaID uint) (*EstadisticasAntropometricas, error) {
	pruebas, err := r.FindByAtleta(atletaID)
	if err != nil {
		return nil, err
	}

	stats := &EstadisticasAntropometricas{TotalPruebas: len(pruebas)}
	if len(pruebas) == 0 {
		return stats, nil
	}
	stats.UltimaPrueba = &pruebas[0]

	var sumaIMC, sumaPeso, sumaEstatura float64
	conIMC := 0
	for _, p := range pruebas {
		if p.IndiceMasaCorporal != nil {
			sumaIMC += *p.IndiceMasaCorporal
			conIMC++
		}
		sumaPeso += p.Peso
		sumaEstatura += p.Estatura
	}
	if conIMC > 0 {
		stats.PromedioIMC = redondear2(sumaIMC / float64(conIMC))
	}
	stats.PromedioPeso = redondear2(sumaPeso / float64(len(pruebas)))
	stats.PromedioEstatura = redondear2(sumaEstatura / float64(len(pruebas)))
	return stats, nil
}
