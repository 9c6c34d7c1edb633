package game

import (
	"github.com/pkg/errors"
)

var errRejectedAiMove = errors.New("engine rejected the selected ai move")
