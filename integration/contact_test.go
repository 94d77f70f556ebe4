package integration

import (
	"net/http"
	"net/url"
)

func (suite *LandingAPITestSuite) TestContactForm() {
	resp := suite.postJSON("/api/contact", map[string]string{
		"name":    "Jane Doe",
		"email":   "jane@example.com",
		"message": "Tell me more about AltChain.",
	})
	defer resp.Body.Close()

	suite.Equal(http.StatusOK, resp.StatusCode)

	response := suite.decodeEnvelope(resp)
	suite.Equal(float64(200), response["code"])
	suite.Contains(response["message"], "sent successfully")

	data := response["data"].(map[string]interface{})
	suite.Equal(true, data["success"])
}

func (suite *LandingAPITestSuite) TestContactFormValidationError() {
	resp := suite.postJSON("/api/contact", map[string]string{
		"name":  "Jane Doe",
		"email": "jane@example.com",
		// message missing
	})
	defer resp.Body.Close()

	suite.Equal(http.StatusBadRequest, resp.StatusCode)

	response := suite.decodeEnvelope(resp)
	suite.Equal(float64(400), response["code"])

	data := response["data"].([]interface{})
	suite.True(len(data) > 0)

	fieldError := data[0].(map[string]interface{})
	suite.Equal("message", fieldError["field"])
	suite.Contains(fieldError["message"], "required")
}

func (suite *LandingAPITestSuite) TestContactFormBlankMessage() {
	resp := suite.postJSON("/api/contact", map[string]string{
		"name":    "Jane Doe",
		"email":   "jane@example.com",
		"message": "   ",
	})
	defer resp.Body.Close()

	suite.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (suite *LandingAPITestSuite) TestTestEmailEndpoint() {
	resp, err := http.Get(suite.baseURL + "/api/test-email?email=ops@example.com&language=fr")
	suite.Require().NoError(err)
	defer resp.Body.Close()

	suite.Equal(http.StatusOK, resp.StatusCode)

	response := suite.decodeEnvelope(resp)
	suite.Contains(response["message"], "Test email sent")

	data := response["data"].(map[string]interface{})
	suite.Equal("ops@example.com", data["email"])
	suite.Equal("fr", data["language"])
}

func (suite *LandingAPITestSuite) TestTestEmailEndpointRequiresAddress() {
	resp, err := http.Get(suite.baseURL + "/api/test-email")
	suite.Require().NoError(err)
	defer resp.Body.Close()

	suite.Equal(http.StatusBadRequest, resp.StatusCode)

	response := suite.decodeEnvelope(resp)
	suite.Contains(response["message"], "email")
}

func (suite *LandingAPITestSuite) TestLanguageSuggestion() {
	req, err := http.NewRequest(http.MethodGet, suite.baseURL+"/api/language?current=en", nil)
	suite.Require().NoError(err)
	req.Header.Set("Accept-Language", "es-MX,en-US;q=0.8")

	resp, err := http.DefaultClient.Do(req)
	suite.Require().NoError(err)
	defer resp.Body.Close()

	suite.Equal(http.StatusOK, resp.StatusCode)

	data := suite.decodeEnvelope(resp)["data"].(map[string]interface{})
	suite.Equal("es", data["suggestion"])
	suite.Equal("en", data["current"])
	suite.Len(data["supported"].([]interface{}), 5)
}

func (suite *LandingAPITestSuite) TestLanguageSuggestionFromTimezone() {
	query := url.Values{"current": {"en"}, "tz": {"Europe/Paris"}}
	resp, err := http.Get(suite.baseURL + "/api/language?" + query.Encode())
	suite.Require().NoError(err)
	defer resp.Body.Close()

	suite.Equal(http.StatusOK, resp.StatusCode)

	data := suite.decodeEnvelope(resp)["data"].(map[string]interface{})
	suite.Equal("fr", data["suggestion"])
}

func (suite *LandingAPITestSuite) TestLanguageSuggestionNoSignals() {
	resp, err := http.Get(suite.baseURL + "/api/language")
	suite.Require().NoError(err)
	defer resp.Body.Close()

	suite.Equal(http.StatusOK, resp.StatusCode)

	data := suite.decodeEnvelope(resp)["data"].(map[string]interface{})
	_, hasSuggestion := data["suggestion"]
	suite.False(hasSuggestion)
	suite.Equal("en", data["current"])
}
