package scene

import "errors"

var errNilWorldMap = errors.New("scene: worldMap must not be nil")
