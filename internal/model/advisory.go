package model

// AdvisoryEntry is a row of the static seasonal crop calendar. Months are an
// inclusive 1-12 range; a range wrapping over the new year is not matched by
// the lookup (kept as-is from the original data model).
type AdvisoryEntry struct {
	ID                uint   `json:"id" gorm:"primaryKey"`
	NomCulture        string `json:"nom_culture" gorm:"column:nom_culture;size:255;not null;index"`
	MoisDebut         int    `json:"mois_debut" gorm:"column:mois_debut;not null"`
	MoisFin           int    `json:"mois_fin" gorm:"column:mois_fin;not null"`
	ConseilMeteoPluie string `json:"conseil_meteo_pluie" gorm:"column:conseil_meteo_pluie;type:text"`
}

// TableName keeps the table name of the original schema.
func (AdvisoryEntry) TableName() string { return "calendrier_cultural" }
