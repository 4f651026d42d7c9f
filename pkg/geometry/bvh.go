package geometry

import (
	"sort"

	"github.com/Aofusa/gemspt-go/pkg/core"
	"github.com/Aofusa/gemspt-go/pkg/material"
)

// Groups this small are cheaper to scan linearly than to split further.
const leafThreshold = 8

// BVH is a bounding volume hierarchy for ray-shape intersection.
type BVH struct {
	root *bvhNode
}

type bvhNode struct {
	boundingBox AABB
	left        *bvhNode
	right       *bvhNode
	shapes      []Shape // Populated for leaf nodes only
}

// NewBVH builds a hierarchy over the given shapes. The input slice is not
// modified.
func NewBVH(shapes []Shape) *BVH {
	if len(shapes) == 0 {
		return &BVH{}
	}

	sorted := make([]Shape, len(shapes))
	copy(sorted, shapes)

	return &BVH{root: buildBVH(sorted)}
}

// buildBVH recursively splits the shapes at the median of the bounding
// box's longest axis.
func buildBVH(shapes []Shape) *bvhNode {
	boundingBox := shapes[0].BoundingBox()
	for _, shape := range shapes[1:] {
		boundingBox = boundingBox.Union(shape.BoundingBox())
	}

	if len(shapes) <= leafThreshold {
		return &bvhNode{boundingBox: boundingBox, shapes: shapes}
	}

	sortShapesByAxis(shapes, boundingBox.LongestAxis())
	mid := len(shapes) / 2

	return &bvhNode{
		boundingBox: boundingBox,
		left:        buildBVH(shapes[:mid]),
		right:       buildBVH(shapes[mid:]),
	}
}

// sortShapesByAxis orders shapes by bounding box center along the axis.
func sortShapesByAxis(shapes []Shape, axis int) {
	sort.Slice(shapes, func(i, j int) bool {
		centerI := shapes[i].BoundingBox().Center()
		centerJ := shapes[j].BoundingBox().Center()
		switch axis {
		case 0:
			return centerI.X < centerJ.X
		case 1:
			return centerI.Y < centerJ.Y
		default:
			return centerI.Z < centerJ.Z
		}
	})
}

// Hit finds the closest intersection within [tMin, tMax], like Shape.Hit.
func (bvh *BVH) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if bvh.root == nil {
		return nil, false
	}
	return hitNode(bvh.root, ray, tMin, tMax)
}

func hitNode(node *bvhNode, ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if !node.boundingBox.Hit(ray, tMin, tMax) {
		return nil, false
	}

	var closest *material.HitRecord
	closestSoFar := tMax

	if node.shapes != nil {
		for _, shape := range node.shapes {
			if hit, ok := shape.Hit(ray, tMin, closestSoFar); ok {
				closest = hit
				closestSoFar = hit.T
			}
		}
		return closest, closest != nil
	}

	if hit, ok := hitNode(node.left, ray, tMin, closestSoFar); ok {
		closest = hit
		closestSoFar = hit.T
	}
	if hit, ok := hitNode(node.right, ray, tMin, closestSoFar); ok {
		closest = hit
	}

	return closest, closest != nil
}
