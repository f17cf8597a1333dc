package entities

import "time"

// Athlete representa um atleta cadastrado no sistema
type Athlete struct {
	ID               uint
	Name             string
	CPF              string
	Age              int
	Weight           float64
	Height           float64
	Sex              string
	CategoryID       uint
	TrainingCenterID uint
	Category         *Category
	TrainingCenter   *TrainingCenter
	CreatedAt        time.Time
}

// CategoryName retorna o nome da categoria, ou vazio se a referência
// não estiver carregada
func (a *Athlete) CategoryName() string {
	if a.Category == nil {
		return ""
	}
	return a.Category.Name
}

// TrainingCenterName retorna o nome do centro de treinamento, ou vazio
// se a referência não estiver carregada
func (a *Athlete) TrainingCenterName() string {
	if a.TrainingCenter == nil {
		return ""
	}
	return a.TrainingCenter.Name
}
