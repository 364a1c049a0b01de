package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClusterUnionFindFindIsIdempotentForFreshID(t *testing.T) {
	uf := newClusterUnionFind()
	a := uf.newID()
	assert.Equal(t, a, uf.find(a))
}

func TestClusterUnionFindUnionMergesRoots(t *testing.T) {
	uf := newClusterUnionFind()
	a := uf.newID()
	b := uf.newID()
	assert.NotEqual(t, uf.find(a), uf.find(b))

	root := uf.union(a, b)
	assert.Equal(t, root, uf.find(a))
	assert.Equal(t, root, uf.find(b))
}

func TestClusterUnionFindUnionOfSameRootIsNoop(t *testing.T) {
	uf := newClusterUnionFind()
	a := uf.newID()
	root := uf.union(a, a)
	assert.Equal(t, a, root)
}

func TestClustersAdd(t *testing.T) {
	c := make(Clusters)
	c.add(1, 10)
	c.add(1, 11)
	c.add(2, 20)

	assert.Len(t, c[1], 2)
	assert.Len(t, c[2], 1)
	_, ok := c[1][10]
	assert.True(t, ok)
}

func TestRemoveSingletonClusters(t *testing.T) {
	turns := []Turn{
		NewTurn(NewPoint(0, 0), MethodTouches, TurnOperation{}, TurnOperation{}),
		NewTurn(NewPoint(0, 0), MethodTouches, TurnOperation{}, TurnOperation{}),
	}
	turns[0].ClusterID = 1
	turns[1].ClusterID = 2

	clusters := make(Clusters)
	clusters.add(1, 0)
	clusters.add(2, 1)
	clusters[2][99] = struct{}{} // cluster 2 has 2 members, stays

	removeSingletonClusters(turns, clusters)

	assert.Equal(t, -1, turns[0].ClusterID)
	assert.Equal(t, 2, turns[1].ClusterID)
	_, stillThere := clusters[1]
	assert.False(t, stillThere)
	_, survives := clusters[2]
	assert.True(t, survives)
}
