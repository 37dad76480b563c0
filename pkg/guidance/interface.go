package guidance

import "github.com/lintang-b-s/transitx/pkg/datastructure"

type Graph interface {
	GetEdge(id datastructure.Index) *datastructure.Edge
}
