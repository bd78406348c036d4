package component

// MainCameraTag marks the camera the game renders through.
type MainCameraTag struct{}

var MainCameraTagComponent = NewComponent[MainCameraTag]()
