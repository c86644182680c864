package opengl

// sceneVertSrc transforms the colored cube/plane vertices and carries the
// light-space position along for the shadow lookup.
const sceneVertSrc = `
#version 330 core
layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aColor;
layout(location = 2) in vec3 aNormal;

uniform mat4 model;
uniform mat3 normalMatrix;
uniform mat4 view;
uniform mat4 projection;
uniform mat4 lightProjection;
uniform mat4 lightView;

out vec3 color;
out vec3 normal;
out vec3 fragPos;
out vec4 fragPosLight;

void main() {
    vec4 world = model * vec4(aPos, 1.0);
    fragPos = world.xyz;
    color = aColor;
    normal = normalMatrix * aNormal;
    fragPosLight = lightProjection * lightView * world;
    gl_Position = projection * view * world;
}
` + "\x00"

// sceneFragSrc is Phong lighting from one positional light with a
// single-sample shadow map comparison.
const sceneFragSrc = `
#version 330 core
in vec3 color;
in vec3 normal;
in vec3 fragPos;
in vec4 fragPosLight;

out vec4 fragColor;

uniform vec3 lightColor;
uniform vec3 directionalLightPos;
uniform vec3 directionalLightAmbientIntensity;
uniform vec3 directionalLightDiffuseIntensity;
uniform vec3 directionalLightSpecularIntensity;
uniform vec3 eyePos;

uniform sampler2D shadowMapTexture;
uniform bool hasShadows;

float shadowFactor(vec3 n, vec3 l) {
    vec3 p = fragPosLight.xyz / fragPosLight.w;
    p = p * 0.5 + 0.5;
    if (p.z > 1.0) return 0.0;
    float closest = texture(shadowMapTexture, p.xy).r;
    float bias = max(0.005 * (1.0 - dot(n, l)), 0.0005);
    return p.z - bias > closest ? 1.0 : 0.0;
}

void main() {
    vec3 n = normalize(normal);
    vec3 l = normalize(directionalLightPos - fragPos);
    vec3 v = normalize(eyePos - fragPos);
    vec3 r = reflect(-l, n);

    vec3 ambient = directionalLightAmbientIntensity * lightColor;
    vec3 diffuse = max(dot(n, l), 0.0) * directionalLightDiffuseIntensity * lightColor;
    vec3 specular = pow(max(dot(v, r), 0.0), 32.0) * 0.5 * directionalLightSpecularIntensity * lightColor;

    float shadow = hasShadows ? shadowFactor(n, l) : 0.0;
    vec3 result = (ambient + (1.0 - shadow) * (diffuse + specular)) * color;
    fragColor = vec4(result, 1.0);
}
` + "\x00"

const shadowVertSrc = `
#version 330 core
layout(location = 0) in vec3 aPos;

uniform mat4 lightProjection;
uniform mat4 lightView;
uniform mat4 lightModel;

void main() {
    gl_Position = lightProjection * lightView * lightModel * vec4(aPos, 1.0);
}
` + "\x00"

// depth is written implicitly
const shadowFragSrc = `
#version 330 core
void main() {}
` + "\x00"

// skyVertSrc forces depth to the far plane with the xyww trick.
const skyVertSrc = `
#version 330 core
layout(location = 0) in vec3 aPos;

uniform mat4 skyboxProjection;
uniform mat4 skyboxView;

out vec3 texCoords;

void main() {
    texCoords = aPos;
    vec4 pos = skyboxProjection * skyboxView * vec4(aPos, 1.0);
    gl_Position = pos.xyww;
}
` + "\x00"

const skyFragSrc = `
#version 330 core
in vec3 texCoords;
out vec4 fragColor;

uniform samplerCube skyboxTex;

void main() {
    fragColor = texture(skyboxTex, texCoords);
}
` + "\x00"
