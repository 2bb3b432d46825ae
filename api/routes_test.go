package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/ndnb/architecture-web-gateway/idcodec"
	"github.com/ndnb/architecture-web-gateway/upstream"
	"github.com/stretchr/testify/require"
)

const testPrefix = "/architecture-web-app"

// fakeUpstream serves canned API responses for the endpoints the gateway
// consumes.
func fakeUpstream(t *testing.T) *httptest.Server {
	t.Helper()

	mux := chi.NewRouter()
	mux.Get(testPrefix+"/projects/active-project-types/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[
			{"id":1,"title":"Residential","status":true},
			{"id":2,"title":"Commercial","status":true},
			{"id":3,"title":"Retired","status":false}
		]}`))
	})
	mux.Get(testPrefix+"/projects/get-clients/1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[
			{"id":11,"fullName":"A. Shrestha","address":"Kathmandu",
			 "project":{"id":5,"name":"Hill House","media":[
				{"id":1,"image_type":"feature","filepath":"/media/front.jpg"}
			 ],"videos":[]}}
		]}`))
	})
	mux.Get(testPrefix+"/projects/get-clients/2", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	})
	mux.Get(testPrefix+"/projects/get-project/11", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"client":{"id":11,"fullName":"A. Shrestha",
			"project":{"id":5,"name":"Hill House","location":"Kathmandu","media":[],"videos":[]}}}}`))
	})
	mux.Get(testPrefix+"/projects/get-project-by-id/5", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"id":5,"name":"Hill House","location":"Kathmandu","media":[],"videos":[]}}`))
	})
	mux.Get(testPrefix+"/projects/get-project-by-id/99", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"not found"}`, http.StatusNotFound)
	})
	mux.Get(testPrefix+"/projects/get-latest-projects", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[
			{"id":5,"name":"Hill House","status":true,"createdAt":"2024-05-01T10:00:00Z","media":[],"videos":[]}
		]}`))
	})
	mux.Get(testPrefix+"/our-clients/feature", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[
			{"id":1,"name":"Himal Cement","link":"https://himalcement.example","filepath":"/media/himal.png","filename":"himal.png"},
			{"id":2,"name":"No Logo Yet","link":"https://nologo.example","filepath":null,"filename":null}
		]}`))
	})
	mux.Get(testPrefix+"/team-members/featured", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[
			{"id":2,"name":"B","designation":"Engineer","order":2,"filepath":null},
			{"id":1,"name":"A","designation":"Architect","order":1,"filepath":"/media/a.jpg"}
		]}`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	server := fakeUpstream(t)
	gateway := upstream.NewGateway(server.URL, testPrefix, server.Client())
	return newRouter(upstream.New(gateway))
}

func doGet(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))
	return recorder
}

func TestGetProjectTypesRoute(t *testing.T) {
	router := newTestRouter(t)

	resp := doGet(t, router, "/project-types")
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Data struct {
			Categories []struct {
				ID    int64  `json:"id"`
				Title string `json:"title"`
			} `json:"categories"`
			Selected int64 `json:"selected"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body.Data.Categories, 2) // inactive type filtered out
	require.Equal(t, "Residential", body.Data.Categories[0].Title)
	require.EqualValues(t, 1, body.Data.Selected)
}

func TestGetProjectsByTypeRoute(t *testing.T) {
	router := newTestRouter(t)

	resp := doGet(t, router, "/projects/type/1")
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Data []struct {
			ProjectName  string `json:"projectName"`
			ThumbnailURL string `json:"thumbnailUrl"`
			Token        string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	require.Equal(t, "Hill House", body.Data[0].ProjectName)
	require.Equal(t, idcodec.Encode(11), body.Data[0].Token)
	require.Contains(t, body.Data[0].ThumbnailURL, "/media/front.jpg")
}

func TestGetProjectsByTypeEmptyIsOK(t *testing.T) {
	router := newTestRouter(t)

	resp := doGet(t, router, "/projects/type/2")
	require.Equal(t, http.StatusOK, resp.Code)
	require.JSONEq(t, `{"data":[]}`, resp.Body.String())
}

func TestGetProjectsByTypeRejectsBadID(t *testing.T) {
	router := newTestRouter(t)

	resp := doGet(t, router, "/projects/type/abc")
	require.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestDetailRoutesSelectMode(t *testing.T) {
	router := newTestRouter(t)

	byClient := doGet(t, router, "/projectByClient/"+idcodec.Encode(11))
	require.Equal(t, http.StatusOK, byClient.Code)

	direct := doGet(t, router, "/projects/"+idcodec.Encode(5))
	require.Equal(t, http.StatusOK, direct.Code)

	var clientBody, directBody struct {
		Data struct {
			ProjectName string `json:"projectName"`
			ClientName  string `json:"clientName"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(byClient.Body.Bytes(), &clientBody))
	require.NoError(t, json.Unmarshal(direct.Body.Bytes(), &directBody))
	require.Equal(t, "Hill House", clientBody.Data.ProjectName)
	require.Equal(t, "A. Shrestha", clientBody.Data.ClientName)
	require.Equal(t, "Hill House", directBody.Data.ProjectName)
}

func TestDetailRouteMalformedTokenIs404(t *testing.T) {
	router := newTestRouter(t)

	resp := doGet(t, router, "/projects/not-a-token!!")
	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestDetailRouteUnknownIDIs404(t *testing.T) {
	router := newTestRouter(t)

	resp := doGet(t, router, "/projects/"+idcodec.Encode(99))
	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestLatestProjectsRoute(t *testing.T) {
	router := newTestRouter(t)

	resp := doGet(t, router, "/projects/latest")
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Data []struct {
			Title string `json:"title"`
			Date  string `json:"date"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	require.Equal(t, "2024/05/01", body.Data[0].Date)
}

func TestFeaturedTeamRouteSortsByOrder(t *testing.T) {
	router := newTestRouter(t)

	resp := doGet(t, router, "/team-members/featured")
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Data []struct {
			Name     string `json:"name"`
			PhotoURL string `json:"photoUrl"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body.Data, 2)
	require.Equal(t, "A", body.Data[0].Name)
	require.Contains(t, body.Data[0].PhotoURL, "/media/a.jpg")
}

func TestFeaturedClientsRouteDropsLogolessRecords(t *testing.T) {
	router := newTestRouter(t)

	resp := doGet(t, router, "/our-clients/feature")
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Data []struct {
			Name    string `json:"name"`
			Link    string `json:"link"`
			LogoURL string `json:"logoUrl"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	require.Equal(t, "Himal Cement", body.Data[0].Name)
	require.Equal(t, "https://himalcement.example", body.Data[0].Link)
	require.Contains(t, body.Data[0].LogoURL, "/architecture-web-app/media/himal.png")
}

func TestUpstreamFailureIsBadGateway(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	gateway := upstream.NewGateway(server.URL, testPrefix, server.Client())
	router := newRouter(upstream.New(gateway))

	resp := doGet(t, router, "/projects/type/1")
	require.Equal(t, http.StatusBadGateway, resp.Code)

	resp = doGet(t, router, "/project-types")
	require.Equal(t, http.StatusBadGateway, resp.Code)
}
