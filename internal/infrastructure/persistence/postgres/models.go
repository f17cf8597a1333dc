package postgres

// AthleteModel é o model GORM para atletas
type AthleteModel struct {
	ID               uint                 `gorm:"primaryKey;autoIncrement"`
	Name             string               `gorm:"type:varchar(50);not null;index"`
	CPF              string               `gorm:"type:varchar(11);uniqueIndex:idx_atletas_cpf;not null"`
	Age              int                  `gorm:"not null"`
	Weight           float64              `gorm:"type:decimal(6,2);not null"`
	Height           float64              `gorm:"type:decimal(6,2);not null"`
	Sex              string               `gorm:"type:varchar(1);not null"`
	CategoryID       uint                 `gorm:"not null;index"`
	TrainingCenterID uint                 `gorm:"not null;index"`
	Category         *CategoryModel       `gorm:"foreignKey:CategoryID"`
	TrainingCenter   *TrainingCenterModel `gorm:"foreignKey:TrainingCenterID"`
	CreatedAt        int64                `gorm:"not null;index"`
}

func (AthleteModel) TableName() string {
	return "atletas"
}

// CategoryModel é o model GORM para categorias
type CategoryModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(10);uniqueIndex:idx_categorias_nome;not null"`
	CreatedAt int64  `gorm:"not null"`
}

func (CategoryModel) TableName() string {
	return "categorias"
}

// TrainingCenterModel é o model GORM para centros de treinamento
type TrainingCenterModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(20);uniqueIndex:idx_centros_treinamento_nome;not null"`
	Address   string `gorm:"type:varchar(60);not null"`
	Owner     string `gorm:"type:varchar(30);not null"`
	CreatedAt int64  `gorm:"not null"`
}

func (TrainingCenterModel) TableName() string {
	return "centros_treinamento"
}
