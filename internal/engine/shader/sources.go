package shader

// File names looked up in the resource directory.
const (
	BlinnPhongVertexFile   = "bp_vert.glsl"
	BlinnPhongFragmentFile = "bp_frag.glsl"
)

// BlinnPhongVertex is used when the resource directory has no vertex shader.
const BlinnPhongVertex = `#version 410 core
layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aNor;

uniform mat4 P;
uniform mat4 MV;
uniform mat4 IT;

out vec3 vPos;
out vec3 vNor;

void main() {
	vec4 posCam = MV * vec4(aPos, 1.0);
	vPos = posCam.xyz;
	vNor = (IT * vec4(aNor, 0.0)).xyz;
	gl_Position = P * posCam;
}
`

// BlinnPhongFragment is used when the resource directory has no fragment shader.
const BlinnPhongFragment = `#version 410 core
in vec3 vPos;
in vec3 vNor;

uniform vec3 lightPos;
uniform vec3 lightColor;
uniform vec3 ka;
uniform vec3 kd;
uniform vec3 ks;
uniform float s;

out vec4 FragColor;

void main() {
	vec3 n = normalize(vNor);
	vec3 l = normalize(lightPos - vPos);
	vec3 e = normalize(-vPos);
	vec3 h = normalize(l + e);

	vec3 diffuse = kd * max(dot(l, n), 0.0);
	vec3 specular = ks * pow(max(dot(h, n), 0.0), s);
	vec3 color = ka + lightColor * (diffuse + specular);
	FragColor = vec4(color, 1.0);
}
`
