package pagination_test

import (
	"math"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Directorio-api/pkg/pagination"
)

const testPath = "http://localhost/v1/organizations"

func TestNewRequest_Normaliza(t *testing.T) {
	r := pagination.NewRequest(0, 0)
	assert.Equal(t, 1, r.Page)
	assert.Equal(t, 1, r.PerPage)
	assert.Equal(t, 0, r.Offset())

	r = pagination.NewRequest(3, 15)
	assert.Equal(t, 30, r.Offset())
	assert.Equal(t, 15, r.Limit())
}

func TestLastPage(t *testing.T) {
	assert.Equal(t, 1, pagination.LastPage(0, 15))
	assert.Equal(t, 1, pagination.LastPage(15, 15))
	assert.Equal(t, 2, pagination.LastPage(16, 15))
	assert.Equal(t, 7, pagination.LastPage(7, 1))
}

func TestNew_PaginaIntermedia(t *testing.T) {
	query := url.Values{"search_text": {"рога"}, "page": {"2"}}
	p := pagination.New([]int{4, 5, 6}, 8, pagination.NewRequest(2, 3), testPath, query)

	assert.Equal(t, []int{4, 5, 6}, p.Data)
	assert.Equal(t, 2, p.Meta.CurrentPage)
	assert.Equal(t, 3, p.Meta.LastPage)
	assert.Equal(t, 3, p.Meta.PerPage)
	assert.Equal(t, 8, p.Meta.Total)
	assert.Equal(t, testPath, p.Meta.Path)
	require.NotNil(t, p.Meta.From)
	require.NotNil(t, p.Meta.To)
	assert.Equal(t, 4, *p.Meta.From)
	assert.Equal(t, 6, *p.Meta.To)

	enc := url.Values{"search_text": {"рога"}}.Encode()
	assert.Equal(t, testPath+"?"+enc+"&page=1", p.Links.First)
	assert.Equal(t, testPath+"?"+enc+"&page=3", p.Links.Last)
	require.NotNil(t, p.Links.Prev)
	require.NotNil(t, p.Links.Next)
	assert.Equal(t, testPath+"?"+enc+"&page=1", *p.Links.Prev)
	assert.Equal(t, testPath+"?"+enc+"&page=3", *p.Links.Next)
}

func TestNew_ListadoVacio(t *testing.T) {
	p := pagination.New[string](nil, 0, pagination.NewRequest(1, 15), testPath, nil)

	assert.NotNil(t, p.Data, "data debe serializarse como [] y no null")
	assert.Empty(t, p.Data)
	assert.Nil(t, p.Meta.From)
	assert.Nil(t, p.Meta.To)
	assert.Equal(t, 1, p.Meta.LastPage)
	assert.Nil(t, p.Links.Prev)
	assert.Nil(t, p.Links.Next)
	assert.Equal(t, testPath+"?page=1", p.Links.First)
	assert.Equal(t, testPath+"?page=1", p.Links.Last)
}

func TestNew_PaginaFueraDeRango(t *testing.T) {
	p := pagination.New([]int{}, 4, pagination.NewRequest(5, 2), testPath, nil)

	assert.Empty(t, p.Data)
	assert.Nil(t, p.Meta.From)
	assert.Equal(t, 2, p.Meta.LastPage)
	require.NotNil(t, p.Links.Prev)
	assert.Equal(t, testPath+"?page=4", *p.Links.Prev)
	assert.Nil(t, p.Links.Next)
}

func TestNewRequest_PaginaEnormeNoDesbordaOffset(t *testing.T) {
	r := pagination.NewRequest(math.MaxInt, 15)
	assert.Equal(t, math.MaxInt/15, r.Page)
	assert.GreaterOrEqual(t, r.Offset(), 0)

	r = pagination.NewRequest(922337203685477580, 1)
	assert.Equal(t, 922337203685477580, r.Page)
	assert.Equal(t, 922337203685477579, r.Offset())

	p := pagination.New([]int{}, 4, pagination.NewRequest(math.MaxInt, 2), testPath, nil)
	assert.Empty(t, p.Data)
	assert.Nil(t, p.Meta.From)
	assert.Nil(t, p.Links.Next)
}
