package engine

// Stage is the media and page collaborator driven by the controller
// Every call is fire-and-forget: implementations swallow playback failures
type Stage interface {
	// Prime runs once on the first pointer event to warm up media playback
	Prime()
	PlayClick()
	// StopClick pauses and rewinds the click sound
	StopClick()
	// ZoomOut starts the splash exit animation
	ZoomOut()
	HideSplash()
	ShowSplash()
	// StartMedia begins intro playback; the host reports its end via Controller.OnMediaEnded
	StartMedia()
	// StopMedia pauses and rewinds the intro
	StopMedia()
}

// NopStage discards every collaborator call
type NopStage struct{}

func (NopStage) Prime()      {}
func (NopStage) PlayClick()  {}
func (NopStage) StopClick()  {}
func (NopStage) ZoomOut()    {}
func (NopStage) HideSplash() {}
func (NopStage) ShowSplash() {}
func (NopStage) StartMedia() {}
func (NopStage) StopMedia()  {}
