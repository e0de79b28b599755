package models

// Stage is a step of the capture-and-upload session, in order:
// acquiring → capturing → uploading → done | failed.
type Stage string

const (
	StageAcquiring Stage = "acquiring"
	StageCapturing Stage = "capturing"
	StageUploading Stage = "uploading"
	StageDone      Stage = "done"
	StageFailed    Stage = "failed"
)

// Terminal reports whether no further stage follows.
func (s Stage) Terminal() bool {
	return s == StageDone || s == StageFailed
}
