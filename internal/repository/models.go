package repository

import "time"

// Submission records one broadcast transaction and the last status observed for it.
type Submission struct {
	ID             string  `gorm:"primaryKey;size:36"`
	Hash           string  `gorm:"size:66;uniqueIndex;not null"` // 0x + 64 hex chars
	Method         string  `gorm:"size:32;not null"`
	Source         string  `gorm:"size:42;not null;index"`
	ProjectID      uint32  `gorm:"not null;default:0;index"`
	MilestoneIndex *uint32                   // set for evidence and verification calls
	Approved       *bool                     // set for verification calls
	Fingerprint    *string `gorm:"size:64"`   // hex sha-256, set for evidence calls
	Payload        string  `gorm:"type:text"` // project plan, set for project creation
	Status         string  `gorm:"size:16;not null"`
	Polls          int     `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Project struct {
	ID          uint32 `gorm:"primaryKey;autoIncrement:false"`
	Owner       string `gorm:"size:42;not null;index"`
	Title       string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`
	Goal        string `gorm:"size:40;not null"` // base units
	CreatedAt   time.Time
}

type Milestone struct {
	ProjectID      uint32 `gorm:"primaryKey;autoIncrement:false"`
	MilestoneIndex uint32 `gorm:"primaryKey;autoIncrement:false"`
	Title          string `gorm:"type:varchar(255);not null"`
	Description    string `gorm:"type:text"`
	Amount         string `gorm:"size:40;not null"` // base units
	Deadline       time.Time
	Status         string  `gorm:"size:24;not null"`
	Fingerprint    *string `gorm:"size:64"`
	UpdatedAt      time.Time
}

type Evidence struct {
	ProjectID      uint32 `gorm:"primaryKey;autoIncrement:false"`
	MilestoneIndex uint32 `gorm:"primaryKey;autoIncrement:false"`
	Fingerprint    string `gorm:"size:64;not null"`
	Submitter      string `gorm:"size:42;not null"`
	TxHash         string `gorm:"size:66;not null"`
	SubmittedAt    time.Time
}

// Preference is the role an address last chose.
type Preference struct {
	Address   string `gorm:"primaryKey;size:42"`
	Role      string `gorm:"size:16;not null"`
	UpdatedAt time.Time
}
